package double

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// Matcher constrains one argument of an expected call.
type Matcher interface {
	// Matches reports whether x satisfies the matcher.
	Matches(x interface{}) bool
	// String describes what the matcher expects, for violation messages.
	String() string
}

type anyMatcher struct{}

func (anyMatcher) Matches(interface{}) bool { return true }
func (anyMatcher) String() string           { return "anything" }

// Any matches every argument value.
func Any() Matcher {
	return anyMatcher{}
}

type eqMatcher struct {
	want interface{}
}

func (m eqMatcher) Matches(x interface{}) bool {
	return cmp.Equal(m.want, x)
}

func (m eqMatcher) String() string {
	return fmt.Sprintf("equal to %v", m.want)
}

// Eq matches arguments deeply equal to want.
func Eq(want interface{}) Matcher {
	return eqMatcher{want: want}
}

type fnMatcher struct {
	fn func(x interface{}) bool
}

func (m fnMatcher) Matches(x interface{}) bool { return m.fn(x) }
func (m fnMatcher) String() string             { return "matching a predicate" }

// MatchedBy matches arguments for which fn returns true.
func MatchedBy(fn func(x interface{}) bool) Matcher {
	return fnMatcher{fn: fn}
}
