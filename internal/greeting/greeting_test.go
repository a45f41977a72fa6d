package greeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGreeting(t *testing.T) {
	assert.Equal(t, "Hello", Greeting())
}

func TestGreetingTo(t *testing.T) {
	tests := []struct {
		subject  string
		expected string
	}{
		{"World", "Hello World"},
		{"Jack", "Hello Jack"},
		{"", "Hello "},
	}

	for _, tt := range tests {
		t.Run(tt.subject, func(t *testing.T) {
			assert.Equal(t, tt.expected, GreetingTo(tt.subject))
		})
	}
}
