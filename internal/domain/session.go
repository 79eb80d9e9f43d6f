package domain

import (
	"strings"
	"unicode/utf8"
)

// Credentials come from the login dialog. Neither field is verified.
type Credentials struct {
	Username string
	Password string
}

// Identity is the opaque display reference of whoever logged in.
type Identity struct {
	Username    string
	DisplayName string
	Initials    string
	AvatarURL   string
}

// Session is the top-level "who is logged in and in what role" state.
type Session struct {
	Role     Role
	Identity Identity
}

// Authenticated reports whether a portal is active for this session.
func (s Session) Authenticated() bool {
	return s.Role.Authenticated()
}

// Initials returns the first rune of every whitespace-separated word.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return b.String()
}
