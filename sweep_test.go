package tableset_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	tableset "github.com/porticus-lab/go-table-dataset"
)

// minimalPDF is a small but structurally complete one-page PDF used in
// place of real compiler output.
const minimalPDF = `%PDF-1.4
1 0 obj
<< /Type /Catalog /Pages 2 0 R >>
endobj
2 0 obj
<< /Type /Pages /Kids [3 0 R] /Count 1 >>
endobj
3 0 obj
<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>
endobj
trailer
<< /Size 4 /Root 1 0 R >>
%%EOF
`

// fakeEngine returns a canned PDF for any source and records how often it
// was called.
type fakeEngine struct {
	compiles int
}

func (e *fakeEngine) Compile(ctx context.Context, source string) (*tableset.Result, error) {
	e.compiles++
	return tableset.NewResult([]byte(minimalPDF)), nil
}

func sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func newTestSweep(dir string, engine tableset.Engine) *tableset.Sweep {
	return tableset.NewSweep(
		tableset.WithOutputDir(dir),
		tableset.WithRowRange(2, 3),
		tableset.WithColumnRange(2, 2),
		tableset.WithEngine(engine, &tableset.LaTeXRenderer{Text: testSource}),
		tableset.WithTextSource(testSource),
	)
}

func TestSweep_Run(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tables")
	engine := &fakeEngine{}

	if err := newTestSweep(dir, engine).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// 2 row counts x 1 column count x 2 filling modes.
	if engine.compiles != 4 {
		t.Errorf("engine compiled %d documents, want 4", engine.compiles)
	}

	for _, base := range []string{"2_2_True", "2_2_False", "3_2_True", "3_2_False"} {
		for _, ext := range []string{".pdf", ".csv"} {
			if _, err := os.Stat(filepath.Join(dir, base+ext)); err != nil {
				t.Errorf("missing artifact %s%s: %v", base, ext, err)
			}
		}
	}
}

func TestSweep_TimestampArtifact(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tables")

	if err := newTestSweep(dir, &fakeEngine{}).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	records := readCSV(t, filepath.Join(dir, "2_2_False.csv"))
	if len(records) != 3 {
		t.Fatalf("2_2_False.csv has %d records, want 3 (header + 2 rows)", len(records))
	}
	if records[0][0] != "title0" || records[0][1] != "title1" {
		t.Errorf("header = %v, want [title0 title1]", records[0])
	}
	for _, row := range records[1:] {
		if len(row) != 2 {
			t.Fatalf("row has %d cells, want 2", len(row))
		}
		for _, cell := range row {
			if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
				t.Errorf("timestamp cell %q is not numeric: %v", cell, err)
			}
		}
	}

	pdf, err := os.ReadFile(filepath.Join(dir, "2_2_False.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if !isPDF(pdf) {
		t.Error("2_2_False.pdf is not a PDF document")
	}
}

func TestSweep_Manifest(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tables")

	if err := newTestSweep(dir, &fakeEngine{}).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, tableset.ManifestName))
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}
	var m tableset.Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("decoding manifest: %v", err)
	}

	if m.RunID == "" {
		t.Error("manifest has empty run_id")
	}
	if m.Engine != "custom" {
		t.Errorf("manifest engine = %q, want %q", m.Engine, "custom")
	}
	if len(m.Artifacts) != 4 {
		t.Fatalf("manifest lists %d artifacts, want 4", len(m.Artifacts))
	}

	for _, a := range m.Artifacts {
		pdf, err := os.ReadFile(filepath.Join(dir, a.Base+".pdf"))
		if err != nil {
			t.Fatalf("reading %s.pdf: %v", a.Base, err)
		}
		if got := sha256Hex(pdf); got != a.PDFSHA256 {
			t.Errorf("%s: pdf checksum mismatch", a.Base)
		}
		csvData, err := os.ReadFile(filepath.Join(dir, a.Base+".csv"))
		if err != nil {
			t.Fatalf("reading %s.csv: %v", a.Base, err)
		}
		if got := sha256Hex(csvData); got != a.CSVSHA256 {
			t.Errorf("%s: csv checksum mismatch", a.Base)
		}
		if a.PDFPages != 1 {
			t.Errorf("%s: pdf_pages = %d, want 1", a.Base, a.PDFPages)
		}
	}
}

func TestSweep_WithoutManifest(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tables")
	s := tableset.NewSweep(
		tableset.WithOutputDir(dir),
		tableset.WithRowRange(2, 2),
		tableset.WithColumnRange(2, 2),
		tableset.WithEngine(&fakeEngine{}, &tableset.LaTeXRenderer{Text: testSource}),
		tableset.WithTextSource(testSource),
		tableset.WithoutManifest(),
	)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, tableset.ManifestName)); !os.IsNotExist(err) {
		t.Errorf("manifest.json written despite WithoutManifest, stat err = %v", err)
	}
}

func TestSweep_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tables")

	if err := newTestSweep(dir, &fakeEngine{}).Run(context.Background()); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	if err := newTestSweep(dir, &fakeEngine{}).Run(context.Background()); err != nil {
		t.Fatalf("second Run: %v", err)
	}

	// Same paths both times; structural shape identical.
	records := readCSV(t, filepath.Join(dir, "3_2_True.csv"))
	if len(records) != 4 {
		t.Errorf("3_2_True.csv has %d records after rerun, want 4", len(records))
	}
}
