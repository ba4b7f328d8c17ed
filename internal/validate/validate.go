package validate

import (
	"regexp"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	reDigit = regexp.MustCompile(`\d`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reQ     = regexp.MustCompile(`^[A-Za-z0-9 _'\-]{1,50}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 254 {
		return "", false
	}
	return s, reEmail.MatchString(strings.ToLower(s))
}

// Password requires at least 6 characters and one digit.
func Password(s string) bool {
	return len(s) >= 6 && reDigit.MatchString(s)
}

func Required(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Q validates a search query: trims, enforces allowed characters and max length.
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s, reQ.MatchString(s)
}

// ID validates a simple resource identifier (product/order ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Rating clamps a review rating into [1,5].
func Rating(n int) int {
	if n < 1 {
		return 1
	}
	if n > 5 {
		return 5
	}
	return n
}
