package device

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadLocator reports a locator string that is not "protocol:remainder".
var ErrBadLocator = errors.New("malformed device locator")

// Locator identifies a specific device as "protocol:remainder",
// e.g. "alsa:hw:1,0". Locators compare by value.
type Locator struct {
	Protocol  string
	Remainder string
}

// NewLocator builds a locator from its parts.
func NewLocator(protocol, remainder string) Locator {
	return Locator{Protocol: protocol, Remainder: remainder}
}

// ParseLocator splits a locator string at the first colon.
func ParseLocator(s string) (Locator, error) {
	i := strings.Index(s, ":")
	if i < 1 {
		return Locator{}, fmt.Errorf("%w: %q", ErrBadLocator, s)
	}
	return Locator{Protocol: s[:i], Remainder: s[i+1:]}, nil
}

func (l Locator) String() string {
	if l.Protocol == "" && l.Remainder == "" {
		return ""
	}
	return l.Protocol + ":" + l.Remainder
}

// Equal reports value equality with another locator.
func (l Locator) Equal(other Locator) bool {
	return l.Protocol == other.Protocol && l.Remainder == other.Remainder
}

// IsZero reports whether the locator is unset.
func (l Locator) IsZero() bool {
	return l.Protocol == "" && l.Remainder == ""
}
