// Package section derives foldable ranges from heading structure. A section
// spans from its heading to the next heading of equal-or-higher rank, or end
// of document; folding collapses the section body while the heading line
// stays visible. Section lists are memoized per document identity and
// skipped entirely above a configurable line-count guard, trading "no
// folding on huge documents" for bounded worst-case cost.
package section

import (
	"github.com/inkfold/mdsurface/pkg/classify"
	"github.com/inkfold/mdsurface/pkg/document"
)

// Section is one heading-rooted range.
// Sections are properly nested or disjoint, never partially overlapping.
type Section struct {
	// HeadingLine is the 1-based line of the heading.
	HeadingLine int

	// Level is the heading level (1-6).
	Level int

	// From is the byte offset of the heading line start.
	From int

	// To is the byte offset just before the next heading of level <= Level,
	// or end of document.
	To int
}

// Body returns the byte range of the collapsible part: everything after the
// heading line through the section end. An empty body means the section is
// not foldable.
func (s Section) Body(doc *document.Document) (int, int) {
	if s.HeadingLine < 1 || s.HeadingLine > doc.LineCount() {
		return s.To, s.To
	}
	bodyFrom := doc.Lines[s.HeadingLine-1].EndOffset
	if bodyFrom > s.To {
		bodyFrom = s.To
	}
	return bodyFrom, s.To
}

// Foldable reports whether the section extends beyond its heading line.
// A heading immediately followed by another heading, or by end of document,
// is not foldable.
func (s Section) Foldable(doc *document.Document) bool {
	from, to := s.Body(doc)
	return to > from
}

// Build scans the whole document and returns its sections in heading order.
// Headings inside fenced code blocks do not start sections.
func Build(doc *document.Document) []Section {
	tags := classify.Classify(doc)

	type heading struct {
		line  int
		level int
	}
	var headings []heading
	for line := 1; line <= doc.LineCount(); line++ {
		if tags[line-1].Tag == classify.TagHeading {
			headings = append(headings, heading{line: line, level: tags[line-1].Level})
		}
	}

	sections := make([]Section, 0, len(headings))
	for i, h := range headings {
		to := len(doc.Content)
		for _, next := range headings[i+1:] {
			if next.level <= h.level {
				to = doc.Lines[next.line-1].StartOffset
				break
			}
		}

		sections = append(sections, Section{
			HeadingLine: h.line,
			Level:       h.level,
			From:        doc.Lines[h.line-1].StartOffset,
			To:          to,
		})
	}

	return sections
}
