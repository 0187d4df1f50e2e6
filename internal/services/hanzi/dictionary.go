package hanzi

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Entry is one dictionary line for a single character.
type Entry struct {
	Traditional string   `json:"traditional"`
	Simplified  string   `json:"simplified"`
	Pinyin      string   `json:"pinyin"`
	Definitions []string `json:"definitions"`
}

// Dictionary maps single characters to their entries. Multi-character
// words are skipped when loading.
type Dictionary struct {
	entries map[rune][]Entry
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: make(map[rune][]Entry)}
}

// LoadFile reads a CC-CEDICT formatted file. An empty path yields an empty
// dictionary.
func LoadFile(path string) (*Dictionary, error) {
	if path == "" {
		return NewDictionary(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads CC-CEDICT lines of the form
//
//	學 学 [xue2] /to learn/to study/
//
// Lines starting with '#' are comments.
func Load(r io.Reader) (*Dictionary, error) {
	d := NewDictionary()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entry, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		d.Add(entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	return d, nil
}

func parseLine(line string) (Entry, error) {
	head, rest, ok := strings.Cut(line, " [")
	if !ok {
		return Entry{}, fmt.Errorf("missing pinyin")
	}
	pinyin, defs, ok := strings.Cut(rest, "] /")
	if !ok {
		return Entry{}, fmt.Errorf("missing definitions")
	}
	trad, simp, ok := strings.Cut(head, " ")
	if !ok {
		return Entry{}, fmt.Errorf("missing simplified form")
	}

	entry := Entry{Traditional: trad, Simplified: simp, Pinyin: pinyin}
	for _, def := range strings.Split(strings.TrimSuffix(defs, "/"), "/") {
		if def = strings.TrimSpace(def); def != "" {
			entry.Definitions = append(entry.Definitions, def)
		}
	}
	return entry, nil
}

// Add indexes a single-character entry under both of its forms.
func (d *Dictionary) Add(e Entry) {
	if utf8.RuneCountInString(e.Traditional) != 1 {
		return
	}
	trad, _ := utf8.DecodeRuneInString(e.Traditional)
	d.entries[trad] = append(d.entries[trad], e)

	if simp, _ := utf8.DecodeRuneInString(e.Simplified); simp != trad && utf8.RuneCountInString(e.Simplified) == 1 {
		d.entries[simp] = append(d.entries[simp], e)
	}
}

// Definitions returns every definition of r in file order.
func (d *Dictionary) Definitions(r rune) []string {
	var out []string
	for _, e := range d.entries[r] {
		out = append(out, e.Definitions...)
	}
	return out
}

// Len is the number of indexed characters.
func (d *Dictionary) Len() int {
	return len(d.entries)
}
