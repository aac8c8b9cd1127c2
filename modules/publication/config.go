package publication

type Config struct {
	SampleName     string `env:"SAMPLE_NAME" envDefault:"Little Printer" yaml:"sample_name"`  // SampleName is greeted on the sample edition.
	SampleLanguage string `env:"SAMPLE_LANGUAGE" envDefault:"english" yaml:"sample_language"` // SampleLanguage picks the sample greeting.
}

// DefaultConfig returns the sample settings used when none are configured.
func DefaultConfig() Config {
	return Config{SampleName: "Little Printer", SampleLanguage: "english"}
}
