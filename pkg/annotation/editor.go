package annotation

import "sync"

// DefaultTextColor is applied to spans created from a selection.
const DefaultTextColor = "black"

// Point is one end of a text selection, expressed against the rendered
// segments: Base is the data-start offset of the segment node holding the
// point (nil when the node carries none) and Offset is the rune offset
// inside that node.
type Point struct {
	Base   *int `json:"base"`
	Offset int  `json:"offset"`
}

// At builds a Point inside the segment starting at base.
func At(base, offset int) Point {
	return Point{Base: &base, Offset: offset}
}

// Resolve returns the absolute content offset of p.
func (p Point) Resolve() (int, bool) {
	if p.Base == nil {
		return 0, false
	}
	return *p.Base + p.Offset, true
}

// Selection is the text selection the editor reads when the pointer is
// released or a mark is clicked.
type Selection interface {
	Anchor() Point
	Focus() Point
	IsCollapsed() bool
	String() string
	Empty()
}

// StaticSelection is a Selection captured from a client event.
type StaticSelection struct {
	AnchorPoint Point  `json:"anchor"`
	FocusPoint  Point  `json:"focus"`
	Text        string `json:"text"`
	cleared     bool
}

func (s *StaticSelection) Anchor() Point { return s.AnchorPoint }
func (s *StaticSelection) Focus() Point  { return s.FocusPoint }
func (s *StaticSelection) String() string {
	return s.Text
}

// IsCollapsed reports whether anchor and focus are the same position.
func (s *StaticSelection) IsCollapsed() bool {
	a, aok := s.AnchorPoint.Resolve()
	f, fok := s.FocusPoint.Resolve()
	if !aok || !fok {
		return s.Text == ""
	}
	return a == f
}

// Empty clears the selection.
func (s *StaticSelection) Empty() {
	s.cleared = true
	s.Text = ""
	s.FocusPoint = s.AnchorPoint
}

// Cleared reports whether Empty has been called.
func (s *StaticSelection) Cleared() bool { return s.cleared }

// Enricher decorates a span created from a selection, typically with the
// active tag and its color. It runs without the editor lock held and may
// read the editor.
type Enricher func(Span) Span

// ChangeFunc receives the complete new span list after every edit.
type ChangeFunc func([]Span)

// Option configures an Editor.
type Option func(*Editor)

// WithEnricher sets the hook applied to newly selected spans.
func WithEnricher(fn Enricher) Option {
	return func(e *Editor) { e.enrich = fn }
}

// WithChangeListener registers the callback invoked on every edit.
func WithChangeListener(fn ChangeFunc) Option {
	return func(e *Editor) { e.onChange = fn }
}

// WithTagDisplay sets how tags are rendered next to marks.
func WithTagDisplay(d TagDisplay) Option {
	return func(e *Editor) { e.display = d }
}

// ReadOnly makes the editor ignore selections and clicks.
func ReadOnly() Option {
	return func(e *Editor) { e.readOnly = true }
}

// Editor holds the state of one annotation pane. Spans never overlap one
// another and always lie within the content.
type Editor struct {
	mu       sync.RWMutex
	content  string
	runes    []rune
	spans    []Span
	enrich   Enricher
	onChange ChangeFunc
	display  TagDisplay
	readOnly bool
}

// NewEditor creates an editor over content with an initial span list.
func NewEditor(content string, spans []Span, opts ...Option) *Editor {
	e := &Editor{
		content: content,
		runes:   []rune(content),
		spans:   Clone(spans),
		display: TagAbove,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Content returns the text being annotated.
func (e *Editor) Content() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.content
}

// Spans returns a copy of the current spans.
func (e *Editor) Spans() []Span {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Clone(e.spans)
}

// IsReadOnly reports whether edits are ignored.
func (e *Editor) IsReadOnly() bool {
	return e.readOnly
}

// SetSpans replaces the span list without notifying the listener.
func (e *Editor) SetSpans(spans []Span) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.spans = Clone(spans)
}

// Segments partitions the content around the current spans.
func (e *Editor) Segments() []Segment {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return ComputeSegments(e.content, e.spans)
}

// Render returns the HTML for the current state.
func (e *Editor) Render() string {
	return RenderHTML(e.Segments(), e.display)
}

// HandleSelection turns a non-empty selection into a new span. It returns
// false and leaves the state untouched when the selection is collapsed,
// cannot be mapped to content offsets, or overlaps an existing span.
func (e *Editor) HandleSelection(sel Selection) bool {
	if e.readOnly || sel == nil || sel.IsCollapsed() {
		return false
	}

	start, ok := sel.Anchor().Resolve()
	if !ok {
		return false
	}
	end, ok := sel.Focus().Resolve()
	if !ok {
		return false
	}
	if start > end {
		start, end = end, start
	}

	e.mu.RLock()
	text, ok := e.free(start, end)
	e.mu.RUnlock()
	if !ok {
		return false
	}

	span := Span{Start: start, End: end, Text: text, TextColor: DefaultTextColor}
	if e.enrich != nil {
		span = e.enrich(span)
		span.Start, span.End, span.Text = start, end, text
	}

	// spans may have changed while the enricher ran
	e.mu.Lock()
	if current, ok := e.free(start, end); !ok || current != text {
		e.mu.Unlock()
		return false
	}
	next := make([]Span, 0, len(e.spans)+1)
	next = append(next, e.spans...)
	next = append(next, span)
	e.spans = next
	e.mu.Unlock()

	e.notify(next)
	sel.Empty()
	return true
}

// free returns the content of [start, end) when the range is inside the
// content and clear of every span. The caller holds e.mu.
func (e *Editor) free(start, end int) (string, bool) {
	if start == end || start < 0 || end > len(e.runes) {
		return "", false
	}
	for _, s := range e.spans {
		if s.Overlaps(start, end) {
			return "", false
		}
	}
	return string(e.runes[start:end]), true
}

// HandleClick removes the span rendered by a marked segment. Clicks are
// ignored while a non-empty selection exists, so that finishing a drag on a
// mark does not delete it.
func (e *Editor) HandleClick(seg Segment, sel Selection) bool {
	if e.readOnly || !seg.Mark {
		return false
	}
	if sel != nil && sel.String() != "" {
		return false
	}

	e.mu.Lock()
	next := make([]Span, 0, len(e.spans))
	for _, s := range e.spans {
		if s.Start == seg.Start && s.End == seg.End {
			continue
		}
		next = append(next, s)
	}
	if len(next) == len(e.spans) {
		e.mu.Unlock()
		return false
	}
	e.spans = next
	e.mu.Unlock()

	e.notify(next)
	return true
}

func (e *Editor) notify(spans []Span) {
	if e.onChange != nil {
		e.onChange(Clone(spans))
	}
}
