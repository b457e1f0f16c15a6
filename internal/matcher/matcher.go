// Package matcher decides whether a body of text mentions any of a set of
// target keywords. Matching is layered: exact substring, word-boundary, then
// fuzzy variant checks tuned for Vietnamese social-media spelling.
package matcher

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Normalize lowercases text, collapses whitespace runs to a single space and
// trims the ends. Word characters and Vietnamese diacritics round-trip.
func Normalize(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(strings.ToLower(text), " "))
}

// Matcher matches keywords against text using a configurable variant table.
type Matcher struct {
	variants map[string][]string
}

// New creates a Matcher. A nil variants table falls back to the built-in
// brand table; pass an explicit table to extend it without a code change.
func New(variants map[string][]string) *Matcher {
	if variants == nil {
		variants = DefaultVariants()
	}
	return &Matcher{variants: variants}
}

// Mentions reports whether text mentions any of the keywords. Keywords are
// OR-ed; order does not affect the outcome. Empty keywords always yields false.
func (m *Matcher) Mentions(text string, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}

	normalized := Normalize(text)

	for _, keyword := range keywords {
		kw := strings.TrimSpace(strings.ToLower(keyword))
		if kw == "" {
			continue
		}

		if strings.Contains(normalized, kw) {
			return true
		}

		if wordBoundaryMatch(normalized, kw) {
			return true
		}

		if m.fuzzyMatch(normalized, kw) {
			return true
		}
	}

	return false
}

func wordBoundaryMatch(text, keyword string) bool {
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}

// appContextPatterns match an abbreviated app name only when it appears next
// to usage words, so a bare short word like "be" does not count as a mention.
var appContextWords = []string{"đi", "về", "gọi", "đặt", "dùng", "app", "ứng dụng", "taxi", "xe", "grab", "mở"}

// fuzzyMatch applies the variant checks for keywords the exact passes missed.
func (m *Matcher) fuzzyMatch(text, keyword string) bool {
	parts := strings.Fields(keyword)

	// Multi-word brand-like keyword: its head word counts only with nearby
	// usage context ("đặt be", "be đi", ...).
	if len(parts) > 1 {
		head := parts[0]
		if strings.Contains(text, head) && hasAppContext(text, head) {
			return true
		}
	}

	for _, variation := range m.variations(keyword) {
		if strings.Contains(text, variation) {
			return true
		}
	}

	// Long compound keywords: compare with all spacing removed.
	if len(keyword) > 4 {
		nospace := strings.ReplaceAll(keyword, " ", "")
		if strings.Contains(strings.ReplaceAll(text, " ", ""), nospace) {
			return true
		}
	}

	return false
}

func hasAppContext(text, head string) bool {
	quoted := regexp.QuoteMeta(head)
	for _, ctx := range appContextWords {
		quotedCtx := regexp.QuoteMeta(ctx)
		before := regexp.MustCompile(`\b` + quoted + `\s+(` + quotedCtx + `)`)
		after := regexp.MustCompile(`(` + quotedCtx + `)\s+` + quoted + `\b`)
		if before.MatchString(text) || after.MatchString(text) {
			return true
		}
	}
	return false
}

// variations returns the known spelling variants of keyword: table entries
// plus automatic spacing variants. The original keyword itself is excluded.
func (m *Matcher) variations(keyword string) []string {
	seen := map[string]struct{}{keyword: {}}
	var out []string

	add := func(v string) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	for mainKey, vars := range m.variants {
		if keyword == mainKey || contains(vars, keyword) {
			for _, v := range vars {
				add(v)
			}
			break
		}
	}

	if strings.Contains(keyword, " ") {
		add(strings.ReplaceAll(keyword, " ", ""))
		add(strings.ReplaceAll(keyword, " ", "-"))
		add(strings.ReplaceAll(keyword, " ", "_"))
	}

	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
