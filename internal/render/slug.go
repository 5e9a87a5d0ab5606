// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns exported conversations into Markdown documents:
// content-block normalization, artifact fencing, and filename slugs.
package render

import "strings"

// DefaultSlugLen bounds slugs used in derived filenames.
const DefaultSlugLen = 50

// slugFallback is returned for titles with no usable characters.
const slugFallback = "untitled"

// Slugify derives a filesystem-safe slug from a title: lowercase, runs of
// non-alphanumeric characters collapsed to single hyphens, no leading or
// trailing hyphen, at most maxLen characters. A maxLen of zero or less uses
// DefaultSlugLen. Empty or all-symbol input yields "untitled".
func Slugify(title string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultSlugLen
	}

	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(title) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteByte('-')
			pending = false
		}
		b.WriteRune(r)
	}

	slug := b.String()
	if len(slug) > maxLen {
		slug = strings.TrimRight(slug[:maxLen], "-")
	}
	if slug == "" {
		return slugFallback
	}
	return slug
}
