package corpus

import (
	"regexp"
	"strings"
)

// footnoteDef matches a footnote definition line such as "[^12]: See Article 4.".
var footnoteDef = regexp.MustCompile(`^\s*\[\^([^\]\s]+)\]:\s*(.*)$`)

type footnote struct {
	id   string
	text string
}

// splitFootnotes removes footnote definition lines from text.
// Inline markers like "[^12]" stay in the body.
func splitFootnotes(text string) (string, []footnote) {
	if !strings.Contains(text, "[^") {
		return strings.TrimSpace(text), nil
	}

	var (
		body  []string
		notes []footnote
	)
	for _, line := range strings.Split(text, "\n") {
		m := footnoteDef.FindStringSubmatch(line)
		if m == nil {
			body = append(body, line)
			continue
		}
		notes = append(notes, footnote{id: m[1], text: strings.TrimSpace(line)})
	}
	return strings.TrimSpace(strings.Join(body, "\n")), notes
}

// footnoteSet keeps the first definition of each footnote id, in order.
type footnoteSet struct {
	seen  map[string]bool
	notes []string
}

func newFootnoteSet() *footnoteSet {
	return &footnoteSet{seen: make(map[string]bool)}
}

func (s *footnoteSet) add(notes ...footnote) {
	for _, n := range notes {
		if s.seen[n.id] {
			continue
		}
		s.seen[n.id] = true
		s.notes = append(s.notes, n.text)
	}
}

func (s *footnoteSet) list() []string {
	return s.notes
}
