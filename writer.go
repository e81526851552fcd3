package tableset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tushar2708/altcsv"
)

// csvQuote is the quote character of the dataset's CSV dialect. Fields
// are quoted only when necessary, so a quote appears in the output only
// around fields containing separators or line breaks.
const csvQuote = '|'

// WriteArtifacts persists one artifact pair: the compiled PDF at
// base+".pdf" and a CSV encoding of the identical table at base+".csv".
// The containing directory is created if absent; existing files at either
// path are overwritten.
//
// The CSV is comma-delimited with '|' as the quote character, minimal
// quoting, and CRLF record terminators. The first record is the title
// row, followed by the data rows in order.
func WriteArtifacts(base string, pdf *Result, titles []string, data Table) error {
	if err := os.MkdirAll(filepath.Dir(base), 0o755); err != nil {
		return fmt.Errorf("tableset: creating output directory: %w", err)
	}

	if err := pdf.WriteToFile(base+".pdf", 0o644); err != nil {
		return fmt.Errorf("tableset: writing %s.pdf: %w", filepath.Base(base), err)
	}

	f, err := os.Create(base + ".csv")
	if err != nil {
		return fmt.Errorf("tableset: creating %s.csv: %w", filepath.Base(base), err)
	}

	w := altcsv.NewWriter(f)
	w.Quote = csvQuote
	w.UseCRLF = true

	if err := w.Write(titles); err != nil {
		f.Close()
		return fmt.Errorf("tableset: writing csv header: %w", err)
	}
	for _, row := range data {
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("tableset: writing csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("tableset: flushing csv: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("tableset: closing %s.csv: %w", filepath.Base(base), err)
	}
	return nil
}
