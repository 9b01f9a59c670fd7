// Package theme holds the site's display theme. State lives with the caller
// (a cookie in the HTTP layer); this package only reduces it.
package theme

import "strings"

type Theme string

const (
	Minimal  Theme = "minimal"
	Artistic Theme = "artistic"
)

const CookieName = "theme"

// Parse returns the theme named by s, falling back to Minimal.
func Parse(s string) Theme {
	if Theme(strings.ToLower(strings.TrimSpace(s))) == Artistic {
		return Artistic
	}
	return Minimal
}

// Toggle switches between the two themes. Anything that is not Artistic is
// treated as Minimal.
func Toggle(t Theme) Theme {
	if t == Artistic {
		return Minimal
	}
	return Artistic
}

func (t Theme) String() string {
	return string(t)
}
