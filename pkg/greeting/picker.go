package greeting

import "math/rand/v2"

// Picker chooses one greeting from a non-empty list.
type Picker func(greetings []string) string

// First always returns the first greeting.
func First(greetings []string) string {
	return greetings[0]
}

// Random picks a greeting uniformly at random.
func Random(greetings []string) string {
	return greetings[rand.IntN(len(greetings))]
}
