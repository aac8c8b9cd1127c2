package push

import "time"

type Config struct {
	Timeout time.Duration `env:"PUSH_TIMEOUT" envDefault:"10s" yaml:"timeout"` // Timeout bounds each outbound POST.
}
