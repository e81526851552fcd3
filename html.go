package tableset

import "strings"

// HTMLRenderer assembles an HTML document embedding the same table data
// the LaTeX form encodes, for compilation through [ChromeEngine]. The
// layout mirrors the LaTeX output: bordered fixed-width table, header row,
// one filler paragraph before and after.
//
// As with [LaTeXRenderer], cell content is inserted verbatim with no
// escaping.
type HTMLRenderer struct {
	// Text supplies the filler paragraphs. Defaults to [Lorem] when nil.
	Text TextSource
}

const htmlDocumentHead = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: serif; margin: 0; }
  table { border-collapse: collapse; width: 100%; table-layout: fixed; }
  th, td { border: 1px solid black; padding: 2px 4px; text-align: left;
           vertical-align: top; word-wrap: break-word; font-weight: normal; }
</style>
</head>
<body>
`

// Document renders titles and data into a self-contained HTML document
// string.
func (r *HTMLRenderer) Document(titles []string, data Table) string {
	src := r.Text
	if src == nil {
		src = Lorem()
	}

	var b strings.Builder
	b.WriteString(htmlDocumentHead)

	b.WriteString("<p>")
	b.WriteString(src.Paragraph())
	b.WriteString("</p>\n")

	b.WriteString("<table>\n<tr>")
	for _, t := range titles {
		b.WriteString("<th>")
		b.WriteString(t)
		b.WriteString("</th>")
	}
	b.WriteString("</tr>\n")
	for _, row := range data {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td>")
			b.WriteString(cell)
			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")

	b.WriteString("<p>")
	b.WriteString(src.Paragraph())
	b.WriteString("</p>\n")

	b.WriteString("</body>\n</html>\n")
	return b.String()
}
