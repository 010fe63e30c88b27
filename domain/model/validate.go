package model

import "regexp"

var (
	urlPattern  = regexp.MustCompile(`^(http|https)://[^\s]+$`)
	namePattern = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

// IsURL reports whether v looks like an http(s) URL, matching the schema
// validation the store applied to avatar, banner, logo and video links.
func IsURL(v string) bool {
	return urlPattern.MatchString(v)
}

// IsValidName reports whether a display name contains only letters and spaces.
func IsValidName(v string) bool {
	return namePattern.MatchString(v)
}
