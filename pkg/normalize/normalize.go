// Package normalize cleans classical Chinese input before it is sent to the
// punctuation and translation models.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Substitution maps a punctuation variant onto the form the models were
// trained on.
type Substitution struct {
	From rune
	To   rune
	Name string
}

// Substitutions is applied after NFKC normalization.
var Substitutions = []Substitution{
	{From: '“', To: '"', Name: "LEFT DOUBLE QUOTATION MARK"},
	{From: '”', To: '"', Name: "RIGHT DOUBLE QUOTATION MARK"},
	{From: '‟', To: '"', Name: "DOUBLE HIGH-REVERSED-9 QUOTATION MARK"},
	{From: '‘', To: '\'', Name: "LEFT SINGLE QUOTATION MARK"},
	{From: '’', To: '\'', Name: "RIGHT SINGLE QUOTATION MARK"},
	{From: '‐', To: '-', Name: "HYPHEN"},
	{From: '–', To: '-', Name: "EN DASH"},
	{From: '—', To: '-', Name: "EM DASH"},
	{From: '―', To: '-', Name: "HORIZONTAL BAR"},
	{From: '−', To: '-', Name: "MINUS SIGN"},
	{From: '∶', To: ':', Name: "RATIO"},
	{From: 'ᆞ', To: '·', Name: "HANGUL JUNGSEONG ARAEA"},
	{From: '∙', To: '·', Name: "BULLET OPERATOR"},
	{From: '⋅', To: '·', Name: "DOT OPERATOR"},
	{From: '・', To: '·', Name: "KATAKANA MIDDLE DOT"},
	{From: 'ㆍ', To: '·', Name: "HANGUL LETTER ARAEA"},
}

var substitutionTable = func() map[rune]rune {
	m := make(map[rune]rune, len(Substitutions))
	for _, s := range Substitutions {
		m[s.From] = s.To
	}
	return m
}()

// String applies NFKC, collapses runs of whitespace other than newlines to a
// single space, replaces punctuation variants and trims the result.
func String(s string) string {
	s = norm.NFKC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if r != '\n' && unicode.IsSpace(r) {
			if !inSpace {
				b.WriteRune(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		if to, ok := substitutionTable[r]; ok {
			r = to
		}
		b.WriteRune(r)
	}

	return strings.TrimSpace(b.String())
}

// CleanText removes every punctuation and separator rune, leaving the bare
// character stream the punctuation model restores marks into.
func CleanText(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.In(r, unicode.Z) {
			return -1
		}
		return r
	}, s)
}
