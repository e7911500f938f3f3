// Package slug derives URL slugs from free text.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const DefaultMaxLen = 200

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

// Make lowercases s, strips diacritics and keeps [a-z0-9-]. Empty input yields "item".
func Make(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	s = reNonAlnum.ReplaceAllString(b.String(), "-")
	s = reHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if utf8.RuneCountInString(s) > maxLen {
		s = strings.Trim(string([]rune(s)[:maxLen]), "-")
	}
	if s == "" {
		s = "item"
	}
	return s
}

// Unique appends -2, -3, ... to base until taken reports the candidate as free.
func Unique(base string, maxLen int, taken func(candidate string) (bool, error)) (string, error) {
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}
	candidate := base
	for i := 2; i < 1000; i++ {
		used, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !used {
			return candidate, nil
		}
		suffix := fmt.Sprintf("-%d", i)
		candidate = trimForSuffix(base, suffix, maxLen) + suffix
	}
	return "", fmt.Errorf("no free slug for %q", base)
}

func trimForSuffix(base, suffix string, maxLen int) string {
	keep := maxLen - len(suffix)
	if keep < 1 {
		keep = 1
	}
	rs := []rune(base)
	if len(rs) > keep {
		rs = rs[:keep]
	}
	out := strings.Trim(string(rs), "-")
	if out == "" {
		out = "x"
	}
	return out
}
