// Package auth decides which identities may use the admin surface.
package auth

import "strings"

// Config holds the admin allow-list.
type Config struct {
	// AdminEmails is a comma separated list of admin email addresses.
	AdminEmails string `mapstructure:"admin_emails" default:""`
}

// Oracle answers whether an identity is an administrator.
type Oracle interface {
	IsAuthorized(identity string) bool
}

// AllowList is an Oracle backed by a fixed set of email addresses.
// Matching ignores case and surrounding whitespace.
type AllowList struct {
	emails map[string]struct{}
}

// NewAllowList builds an AllowList from email addresses.
func NewAllowList(emails ...string) *AllowList {
	a := &AllowList{emails: make(map[string]struct{}, len(emails))}
	for _, e := range emails {
		if e = normalize(e); e != "" {
			a.emails[e] = struct{}{}
		}
	}
	return a
}

// FromConfig parses the comma separated allow-list.
func FromConfig(cfg Config) *AllowList {
	return NewAllowList(strings.Split(cfg.AdminEmails, ",")...)
}

// IsAuthorized reports whether identity is on the list.
func (a *AllowList) IsAuthorized(identity string) bool {
	_, ok := a.emails[normalize(identity)]
	return ok
}

// Len returns the number of distinct addresses.
func (a *AllowList) Len() int {
	return len(a.emails)
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
