// Package greeting holds the per-language greeting table and the policies used
// to pick a greeting word from it.
//
// A Table is immutable once built. Language keys are case-folded with
// golang.org/x/text/cases, so "English", "ENGLISH" and "english" resolve to the
// same entry.
//
//	table := greeting.Default()
//	sentence, err := table.Greet("english", "Alice", greeting.First) // "Hello, Alice"
//
// Two policies ship with the package: First always returns the first greeting
// and keeps sample previews reproducible; Random picks uniformly and is used
// for pushed editions.
package greeting
