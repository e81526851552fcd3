package tableset

import (
	"strconv"
	"time"
)

// Table is a rectangular grid of cell strings, row-major. Every row has
// the same number of cells.
type Table [][]string

// Rows returns the number of data rows.
func (t Table) Rows() int {
	return len(t)
}

// Columns returns the number of cells per row, 0 for an empty table.
func (t Table) Columns() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// FillMode selects what goes into table cells.
type FillMode int

const (
	// FillSentences fills every cell with one generated pseudo-Latin
	// sentence.
	FillSentences FillMode = iota

	// FillTimestamps fills every cell with the current Unix time in whole
	// seconds, re-sampled per cell. Cells generated in the same call may
	// share a value or not, depending on clock resolution.
	FillTimestamps
)

// String returns "sentences" or "timestamps".
func (m FillMode) String() string {
	switch m {
	case FillSentences:
		return "sentences"
	case FillTimestamps:
		return "timestamps"
	}
	return "unknown"
}

// fileToken returns the flag component of artifact file names. The dataset
// convention spells the sentence flag as a capitalized boolean, so files
// sort into pairs like 2_2_True.pdf / 2_2_False.pdf.
func (m FillMode) fileToken() string {
	if m == FillSentences {
		return "True"
	}
	return "False"
}

// Generate produces a rows×cols Table filled according to mode, using the
// default pseudo-Latin source for sentence cells. Zero rows or columns
// yield an empty table.
func Generate(rows, cols int, mode FillMode) Table {
	return GenerateWithSource(rows, cols, mode, Lorem())
}

// GenerateWithSource is [Generate] with an explicit sentence source, which
// lets callers substitute a deterministic generator.
func GenerateWithSource(rows, cols int, mode FillMode, src TextSource) Table {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	table := make(Table, 0, rows)
	for r := 0; r < rows; r++ {
		row := make([]string, cols)
		for c := 0; c < cols; c++ {
			if mode == FillSentences {
				row[c] = src.Sentence()
			} else {
				row[c] = strconv.FormatInt(time.Now().Unix(), 10)
			}
		}
		table = append(table, row)
	}
	return table
}

// Titles returns the generic column-title row for n columns:
// ["title0", "title1", ..., "title{n-1}"]. Deterministic.
func Titles(n int) []string {
	return TitlesWithBase(n, "title")
}

// TitlesWithBase is [Titles] with a custom base name.
func TitlesWithBase(n int, base string) []string {
	if n < 0 {
		n = 0
	}
	titles := make([]string, 0, n)
	for i := 0; i < n; i++ {
		titles = append(titles, base+strconv.Itoa(i))
	}
	return titles
}
