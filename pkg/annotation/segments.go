package annotation

import "sort"

// Segment is a contiguous piece of content. Marked segments carry the span
// they render; unmarked segments only carry Start, End and Content.
type Segment struct {
	Span
	Content string `json:"content"`
	Mark    bool   `json:"mark"`
}

// ComputeSegments partitions content into marked and unmarked segments.
// Spans are visited by start ascending, longer spans first on ties, and
// every gap between them becomes an unmarked segment. For non-overlapping
// spans inside content the concatenated segment contents equal content.
func ComputeSegments(content string, spans []Span) []Segment {
	runes := []rune(content)
	sorted := Clone(spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End > sorted[j].End
	})

	segments := make([]Segment, 0, 2*len(sorted)+1)
	lastEnd := 0
	for _, s := range sorted {
		if s.Start > lastEnd {
			segments = append(segments, Segment{
				Span:    Span{Start: lastEnd, End: s.Start},
				Content: sliceRunes(runes, lastEnd, s.Start),
			})
		}
		segments = append(segments, Segment{
			Span:    s,
			Content: sliceRunes(runes, s.Start, s.End),
			Mark:    true,
		})
		lastEnd = s.End
	}

	if lastEnd < len(runes) {
		segments = append(segments, Segment{
			Span:    Span{Start: lastEnd, End: len(runes)},
			Content: string(runes[lastEnd:]),
		})
	}

	return segments
}
