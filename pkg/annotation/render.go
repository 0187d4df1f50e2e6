package annotation

import (
	"html"
	"strconv"
	"strings"
)

// TagDisplay controls where a mark's tag is drawn.
type TagDisplay string

const (
	TagHide  TagDisplay = "hide"
	TagRight TagDisplay = "right"
	TagAbove TagDisplay = "above"
)

// DefaultMarkColor is used for marks without a color.
const DefaultMarkColor = "#84d2ff"

// ParseTagDisplay reads a display mode, defaulting to TagAbove.
func ParseTagDisplay(s string) TagDisplay {
	switch TagDisplay(strings.ToLower(strings.TrimSpace(s))) {
	case TagHide:
		return TagHide
	case TagRight:
		return TagRight
	default:
		return TagAbove
	}
}

// RenderHTML renders segments as inline HTML. Every text-bearing node has a
// data-start attribute holding its segment's start offset, which is what a
// client reports back as Point.Base.
func RenderHTML(segments []Segment, display TagDisplay) string {
	var b strings.Builder
	for _, seg := range segments {
		start := strconv.Itoa(seg.Start)
		if !seg.Mark {
			b.WriteString(`<span data-start="` + start + `">`)
			b.WriteString(html.EscapeString(seg.Content))
			b.WriteString(`</span>`)
			continue
		}

		color := seg.Color
		if color == "" {
			color = DefaultMarkColor
		}
		style := "background-color:" + color
		if seg.TextColor != "" {
			style += ";color:" + seg.TextColor
		}
		tag := html.EscapeString(seg.Tag)

		b.WriteString(`<span class="annotation annotation-` + string(display) + `">`)
		if display == TagAbove && tag != "" {
			b.WriteString(`<span class="annotation-tag">` + tag + `</span>`)
		}
		b.WriteString(`<mark data-start="` + start + `" data-end="` + strconv.Itoa(seg.End) + `" style="` + html.EscapeString(style) + `">`)
		b.WriteString(html.EscapeString(seg.Content))
		b.WriteString(`</mark>`)
		if display == TagRight && tag != "" {
			b.WriteString(`<span class="annotation-tag">` + tag + `</span>`)
		}
		b.WriteString(`</span>`)
	}
	return b.String()
}
