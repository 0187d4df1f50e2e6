// Package annotation holds the span model shared by the NER workspace and the
// interactive annotation editor: IOB decoding, inline markup, segmentation of
// content around spans, and the editor state transitions.
package annotation

import (
	"sort"
	"strings"
)

// Span is a labeled range over a piece of content. Start and End are rune
// offsets with End exclusive.
type Span struct {
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Text      string `json:"text,omitempty"`
	Tag       string `json:"tag,omitempty"`
	Color     string `json:"color,omitempty"`
	TextColor string `json:"textColor,omitempty"`
}

// Len returns the number of runes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Overlaps reports whether [start, end) shares at least one rune with s.
func (s Span) Overlaps(start, end int) bool {
	return start < s.End && s.Start < end
}

// Label is one of the entity buckets the decoder emits.
type Label string

const (
	LabelPerson       Label = "PER"
	LabelLocation     Label = "LOC"
	LabelOrganization Label = "ORG"
	LabelMisc         Label = "MISC"
)

// EntityType describes how a label is presented.
type EntityType struct {
	Label Label  `json:"tag"`
	Name  string `json:"label"`
	Color string `json:"color"`
}

// Labels lists the entity buckets in display order.
var Labels = []Label{LabelPerson, LabelLocation, LabelOrganization, LabelMisc}

var entityTypes = map[Label]EntityType{
	LabelPerson:       {Label: LabelPerson, Name: "Person", Color: "#fecaca"},
	LabelLocation:     {Label: LabelLocation, Name: "Location", Color: "#bbf7d0"},
	LabelOrganization: {Label: LabelOrganization, Name: "Organization", Color: "#bfdbfe"},
	LabelMisc:         {Label: LabelMisc, Name: "Miscellaneous", Color: "#e9d5ff"},
}

// rawTypes maps corpus-specific entity types emitted by the models onto the
// display buckets. Keys are lower case.
var rawTypes = map[string]Label{
	"ajd_person":     LabelPerson,
	"ajd_location":   LabelLocation,
	"ajd_other":      LabelMisc,
	"klc_other":      LabelMisc,
	"wyweb_bookname": LabelMisc,
	"wyweb_other":    LabelMisc,
	"per":            LabelPerson,
	"person":         LabelPerson,
	"loc":            LabelLocation,
	"location":       LabelLocation,
	"org":            LabelOrganization,
	"organization":   LabelOrganization,
	"misc":           LabelMisc,
}

// MapRawType maps a raw model entity type to its bucket. Unknown types fall
// into LabelMisc.
func MapRawType(raw string) Label {
	if l, ok := rawTypes[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return l
	}
	return LabelMisc
}

// LookupEntityType returns the presentation for tag, if registered.
func LookupEntityType(tag string) (EntityType, bool) {
	et, ok := entityTypes[Label(tag)]
	return et, ok
}

// EntityTypes returns the registered entity types in display order.
func EntityTypes() []EntityType {
	out := make([]EntityType, 0, len(Labels))
	for _, l := range Labels {
		out = append(out, entityTypes[l])
	}
	return out
}

// DisplayName returns the display name registered for tag. Unregistered tags
// are returned as is; an empty tag is shown as the misc bucket.
func DisplayName(tag string) string {
	if tag == "" {
		return entityTypes[LabelMisc].Name
	}
	if et, ok := LookupEntityType(tag); ok {
		return et.Name
	}
	return tag
}

// TagFromDisplayName reverses DisplayName.
func TagFromDisplayName(name string) string {
	for _, et := range entityTypes {
		if et.Name == name {
			return string(et.Label)
		}
	}
	return name
}

// ApplyEntityStyle sets the bucket color on a span. Spans with an
// unregistered tag are returned unchanged.
func ApplyEntityStyle(s Span) Span {
	if et, ok := LookupEntityType(s.Tag); ok {
		s.Color = et.Color
	}
	return s
}

// ApplyEntityStyles styles every span into a new slice.
func ApplyEntityStyles(spans []Span) []Span {
	out := make([]Span, len(spans))
	for i, s := range spans {
		out[i] = ApplyEntityStyle(s)
	}
	return out
}

// Clone returns a copy of spans that never aliases the input.
func Clone(spans []Span) []Span {
	out := make([]Span, len(spans))
	copy(out, spans)
	return out
}

// SortByStart returns a copy of spans stably ordered by start offset.
func SortByStart(spans []Span) []Span {
	out := Clone(spans)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	return out
}

func sliceRunes(r []rune, start, end int) string {
	start = clamp(start, 0, len(r))
	end = clamp(end, start, len(r))
	return string(r[start:end])
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
