// Package greeting holds the trivial string helpers used as the simplest
// subjects for the check runner.
package greeting

import "fmt"

// Greeting returns the plain greeting.
func Greeting() string {
	return "Hello"
}

// GreetingTo returns the greeting addressed to a subject.
func GreetingTo(subject string) string {
	return fmt.Sprintf("Hello %s", subject)
}
