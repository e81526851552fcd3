package tableset

import (
	"fmt"
	"strings"
)

// Markup tokens for the LaTeX table form.
const (
	columnDelimiter = "|"
	columnSeparator = "&"
	newRowSymbol    = `\\`
	horizontalRule  = `\hline`

	// tableWidthCM is the fixed overall table width. It is divided evenly
	// (integer division) across columns to size each fixed-width cell.
	tableWidthCM = 15
)

// Placeholders substituted into the constant templates below. The
// templates are immutable; rendering always returns a new string.
const (
	phTextBefore = "_TEXT_BEFORE_TABLE"
	phTextAfter  = "_TEXT_AFTER_TABLE"
	phTable      = "_THE_TABLE_"
	phSchema     = "_TABLE_SCHEMA"
	phRowsList   = "_TABLE_ROWS_LIST"
	phTitle      = "_TABLE_TITLE"
)

const latexDocumentTemplate = `\documentclass{article}
\usepackage[a4paper, portrait, margin=1in]{geometry}
\usepackage[utf8x]{inputenc}
\usepackage{tabularx}
\begin{document}
` + phTextBefore + `

` + phTable + `
` + phTextAfter + `
\end{document}`

const latexTableTemplate = `\begin{tabular}{` + phSchema + `}
` + horizontalRule + `
` + phTitle + newRowSymbol + ` ` + horizontalRule + `
` + phRowsList + ` ` + newRowSymbol + ` ` + horizontalRule + `
\end{tabular}
`

// ColumnSchema returns the tabular column specification for n columns:
// one bordered, fixed-width, left-aligned p{...} spec per column, e.g.
// |p{5cm}|p{5cm}|p{5cm}| for three columns. The per-column width is
// tableWidthCM / n, truncated.
func ColumnSchema(n int) string {
	if n <= 0 {
		return columnDelimiter
	}
	spec := fmt.Sprintf("p{%dcm}", tableWidthCM/n)
	return strings.Repeat(columnDelimiter+spec, n) + columnDelimiter
}

// LaTeXRenderer assembles a complete LaTeX document embedding a table.
//
// Cell and title strings are substituted verbatim: no LaTeX escaping is
// applied, and title/table column counts are not cross-checked. Mismatched
// counts or metacharacter-bearing cells produce markup that pdflatex may
// reject. See the package documentation.
type LaTeXRenderer struct {
	// Text supplies the two decorative filler paragraphs surrounding the
	// table. Defaults to [Lorem] when nil.
	Text TextSource
}

// Document renders titles and data into a self-contained LaTeX document
// string ready for compilation. The table is regenerated fully per call,
// with fresh filler paragraphs before and after it.
func (r *LaTeXRenderer) Document(titles []string, data Table) string {
	src := r.Text
	if src == nil {
		src = Lorem()
	}

	header := strings.Join(titles, " "+columnSeparator+" ")

	rows := make([]string, len(data))
	for i, row := range data {
		rows[i] = strings.Join(row, " "+columnSeparator+" ")
	}
	// Every row line, including the last (via the template), is followed
	// by a horizontal rule.
	rowsList := strings.Join(rows, " "+newRowSymbol+" "+horizontalRule+"\n")

	table := strings.NewReplacer(
		phRowsList, rowsList,
		phSchema, ColumnSchema(len(titles)),
		phTitle, header,
	).Replace(latexTableTemplate)

	return strings.NewReplacer(
		phTextBefore, src.Paragraph(),
		phTable, table,
		phTextAfter, src.Paragraph(),
	).Replace(latexDocumentTemplate)
}
