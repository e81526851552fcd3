package tableset

import (
	"strings"

	lorem "github.com/drhodes/golorem"
)

// TextSource produces filler text for table cells and the paragraphs
// surrounding the rendered table. The default implementation is unseeded
// and non-deterministic; tests substitute a fixed source.
type TextSource interface {
	// Sentence returns one non-empty pseudo sentence ending in punctuation.
	Sentence() string

	// Paragraph returns several sentences of filler prose.
	Paragraph() string
}

// Lorem returns the default pseudo-Latin [TextSource].
func Lorem() TextSource {
	return loremSource{}
}

type loremSource struct{}

func (loremSource) Sentence() string {
	return lorem.Sentence(5, 12)
}

func (loremSource) Paragraph() string {
	return lorem.Paragraph(3, 5)
}

// SentenceText concatenates n sentences from src with no separator. The
// sweep always asks for a single sentence per cell; n > 1 is accepted for
// callers that want denser cells.
func SentenceText(src TextSource, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(src.Sentence())
	}
	return b.String()
}
