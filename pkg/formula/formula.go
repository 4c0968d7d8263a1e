// Package formula patches Homebrew formula documents.
//
// A formula is treated as opaque text apart from two recognized single-line
// fields, url and sha256. Matching is line-anchored and case-sensitive, and
// only the first occurrence of each field is touched; everything else passes
// through byte-for-byte.
package formula

import (
	"fmt"
	"regexp"
)

var (
	urlPattern    = regexp.MustCompile(`(?m)^(\s*url\s+")([^"]+)("\s*)$`)
	sha256Pattern = regexp.MustCompile(`(?m)^(\s*sha256\s+")([0-9a-fA-F]+)("\s*)$`)
)

// FieldNotFoundError indicates the formula document is missing a required field line.
type FieldNotFoundError struct {
	Field string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("could not find `%s` line in formula", e.Field)
}

// Patch replaces the quoted value of the url line with newURL and the quoted
// value of the sha256 line with newSHA256. Both fields are located before
// either is modified: if one is missing, the content is returned unchanged
// alongside a *FieldNotFoundError.
func Patch(content, newURL, newSHA256 string) (string, error) {
	if !urlPattern.MatchString(content) {
		return content, &FieldNotFoundError{Field: "url"}
	}
	if !sha256Pattern.MatchString(content) {
		return content, &FieldNotFoundError{Field: "sha256"}
	}

	content = replaceValue(urlPattern, content, newURL)
	content = replaceValue(sha256Pattern, content, newSHA256)
	return content, nil
}

// Fields returns the current url and sha256 values of the formula document.
func Fields(content string) (url, sha256 string, err error) {
	m := urlPattern.FindStringSubmatch(content)
	if m == nil {
		return "", "", &FieldNotFoundError{Field: "url"}
	}
	url = m[2]

	m = sha256Pattern.FindStringSubmatch(content)
	if m == nil {
		return "", "", &FieldNotFoundError{Field: "sha256"}
	}
	sha256 = m[2]

	return url, sha256, nil
}

// replaceValue splices value in place of the middle capture group of the
// first match. Splicing by index keeps the replacement literal, so values
// containing regexp replacement metacharacters are safe.
func replaceValue(re *regexp.Regexp, content, value string) string {
	m := re.FindStringSubmatchIndex(content)
	if m == nil {
		return content
	}
	// m[3] is the end of the opening group, m[6] the start of the closing one.
	return content[:m[3]] + value + content[m[6]:]
}
