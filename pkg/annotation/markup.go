package annotation

import (
	"fmt"
	"html"
	"strings"

	"github.com/antchfx/xmlquery"
)

const (
	markupRoot     = "markup"
	markupSpan     = "span"
	markupNameAttr = "name"
)

// Serialize renders text with every span wrapped in <Name>...</Name>, where
// Name is the display name of the span's tag. Spans are applied in start
// order and each insertion shifts later offsets by the length of the tags
// already written. Neither input is modified.
func Serialize(text string, spans []Span) string {
	out := []rune(text)
	offset := 0

	for _, s := range SortByStart(spans) {
		name := DisplayName(s.Tag)
		open := []rune("<" + name + ">")
		closing := []rune("</" + name + ">")

		start := clamp(s.Start+offset, 0, len(out))
		end := clamp(s.End+offset, start, len(out))

		next := make([]rune, 0, len(out)+len(open)+len(closing))
		next = append(next, out[:start]...)
		next = append(next, open...)
		next = append(next, out[start:end]...)
		next = append(next, closing...)
		next = append(next, out[end:]...)

		out = next
		offset += len(open) + len(closing)
	}

	return string(out)
}

// ParseMarkup recovers the plain text and spans from markup produced by
// Serialize. Any <Name>...</Name> pair is a span, whatever Name contains, and
// the name is mapped back to a tag through the display name registry. An
// opening tag that is never closed, and any other '<' or '&', is text. Nested
// spans contribute their inner text to the outer span. A closing tag with no
// open tag of the same name is an error.
func ParseMarkup(markup string) (string, []Span, error) {
	escaped, err := escapeMarkup(markup)
	if err != nil {
		return "", nil, fmt.Errorf("parsing markup: %w", err)
	}

	doc, err := xmlquery.Parse(strings.NewReader("<" + markupRoot + ">" + escaped + "</" + markupRoot + ">"))
	if err != nil {
		return "", nil, fmt.Errorf("parsing markup: %w", err)
	}

	root := doc.SelectElement(markupRoot)
	if root == nil {
		return "", nil, fmt.Errorf("parsing markup: missing root element")
	}

	var text []rune
	spans := make([]Span, 0)
	for n := root.FirstChild; n != nil; n = n.NextSibling {
		switch n.Type {
		case xmlquery.TextNode, xmlquery.CharDataNode:
			text = append(text, []rune(n.Data)...)
		case xmlquery.ElementNode:
			inner := []rune(n.InnerText())
			start := len(text)
			text = append(text, inner...)
			if len(inner) == 0 {
				continue
			}
			spans = append(spans, Span{
				Start: start,
				End:   len(text),
				Text:  string(inner),
				Tag:   TagFromDisplayName(n.SelectAttr(markupNameAttr)),
			})
		}
	}

	return string(text), spans, nil
}

// markupTag is a candidate <Name> or </Name> at byte offset pos.
type markupTag struct {
	pos, n  int
	closing bool
	name    string
}

// escapeMarkup rewrites every matched <Name> and </Name> pair as a span
// element carrying Name in an attribute, and escapes everything else that
// XML reserves so that the result is well-formed.
func escapeMarkup(markup string) (string, error) {
	var tags []markupTag
	for i := 0; i < len(markup); i++ {
		if markup[i] != '<' {
			continue
		}
		if closing, name, n := readTag(markup[i:]); n > 0 {
			tags = append(tags, markupTag{pos: i, n: n, closing: closing, name: name})
		}
	}

	// A closing tag pairs with the innermost open tag of the same name;
	// opening tags it skips over, and those never closed, stay text.
	matched := make(map[int]bool)
	var open []int
	for idx, tag := range tags {
		if !tag.closing {
			open = append(open, idx)
			continue
		}
		k := len(open) - 1
		for k >= 0 && tags[open[k]].name != tag.name {
			k--
		}
		if k < 0 {
			return "", fmt.Errorf("unexpected closing tag </%s>", tag.name)
		}
		matched[open[k]], matched[idx] = true, true
		open = open[:k]
	}

	var b strings.Builder
	next := 0
	for i := 0; i < len(markup); {
		if next < len(tags) && tags[next].pos == i {
			tag := tags[next]
			next++
			if matched[next-1] {
				if tag.closing {
					b.WriteString("</" + markupSpan + ">")
				} else {
					b.WriteString("<" + markupSpan + " " + markupNameAttr + `="` + html.EscapeString(tag.name) + `">`)
				}
				i += tag.n
				continue
			}
		}
		switch markup[i] {
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '&':
			b.WriteString("&amp;")
		default:
			b.WriteByte(markup[i])
		}
		i++
	}
	return b.String(), nil
}

// readTag reads a <Name> or </Name> at the start of s. n is zero when s does
// not start with one.
func readTag(s string) (closing bool, name string, n int) {
	rest := s[1:]
	if strings.HasPrefix(rest, "/") {
		closing = true
		rest = rest[1:]
	}
	end := strings.IndexAny(rest, "<>")
	if end <= 0 || rest[end] != '>' || strings.Contains(rest[:end], "/") {
		return false, "", 0
	}
	name = rest[:end]
	n = len(s) - len(rest) + end + 1
	return closing, name, n
}
