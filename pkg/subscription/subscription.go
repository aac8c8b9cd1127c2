package subscription

import "strings"

// Table is the hash holding every subscription.
const Table = "push_example:subscriptions"

// Subscription is a configured printer delivery target.
// ID is the hash field and is not part of the stored value.
type Subscription struct {
	ID       string `json:"-"`
	Name     string `json:"name"`
	Language string `json:"lang"`
	Endpoint string `json:"endpoint"`
}

// Complete reports whether every field required for delivery is present.
func (s Subscription) Complete() bool {
	return strings.TrimSpace(s.ID) != "" &&
		strings.TrimSpace(s.Name) != "" &&
		strings.TrimSpace(s.Language) != "" &&
		strings.TrimSpace(s.Endpoint) != ""
}
