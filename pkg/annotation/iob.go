package annotation

import "strings"

// decoderState is either noEntity or inEntity.
type decoderState interface {
	isDecoderState()
}

type noEntity struct{}

type inEntity struct {
	start int
	end   int
	label Label
}

func (noEntity) isDecoderState() {}
func (inEntity) isDecoderState() {}

// ParseTags splits the comma-joined tag sequence returned by the NER backend.
func ParseTags(iob string) []string {
	if strings.TrimSpace(iob) == "" {
		return []string{}
	}
	parts := strings.Split(iob, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Decode converts a per-character IOB tag sequence into entity spans over
// text. Tags pair with runes by position; tags past the end of text are
// ignored and runes without a tag behave as "O".
//
// A "B-" tag always opens a new entity. An "I-" tag extends the open entity,
// keeping the type it was opened with, or opens one when nothing is open.
// Anything else, including malformed tags, closes the open entity.
func Decode(text string, tags []string) []Span {
	runes := []rune(text)
	spans := make([]Span, 0)

	var state decoderState = noEntity{}
	emit := func() {
		if e, ok := state.(inEntity); ok {
			spans = append(spans, Span{
				Start: e.start,
				End:   e.end,
				Text:  string(runes[e.start:e.end]),
				Tag:   string(e.label),
			})
		}
		state = noEntity{}
	}

	n := min(len(tags), len(runes))
	for i := 0; i < n; i++ {
		prefix, rawType, ok := splitTag(tags[i])
		if !ok {
			emit()
			continue
		}

		switch prefix {
		case "B":
			emit()
			state = inEntity{start: i, end: i + 1, label: MapRawType(rawType)}
		case "I":
			if e, open := state.(inEntity); open {
				e.end = i + 1
				state = e
			} else {
				state = inEntity{start: i, end: i + 1, label: MapRawType(rawType)}
			}
		}
	}
	emit()

	return spans
}

// splitTag splits "B-ajd_person" into its prefix and raw type. ok is false
// for "O" and for anything that is not a B- or I- tag.
func splitTag(tag string) (prefix, rawType string, ok bool) {
	tag = strings.TrimSpace(tag)
	prefix, rawType, found := strings.Cut(tag, "-")
	if !found {
		return "", "", false
	}
	if prefix != "B" && prefix != "I" {
		return "", "", false
	}
	return prefix, rawType, true
}
