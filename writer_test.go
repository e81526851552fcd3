package tableset_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tushar2708/altcsv"

	tableset "github.com/porticus-lab/go-table-dataset"
)

// readCSV parses an artifact CSV with the dataset's '|' quote dialect.
func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()

	r := altcsv.NewReader(f)
	r.Quote = '|'
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}
	return records
}

func TestWriteArtifacts_RoundTrip(t *testing.T) {
	base := filepath.Join(t.TempDir(), "3_2_True")
	pdf := tableset.NewResult([]byte(minimalPDF))

	titles := []string{"title0", "title1"}
	data := tableset.Table{
		{"one", "two"},
		{"three", "four"},
		{"five", "six"},
	}

	if err := tableset.WriteArtifacts(base, pdf, titles, data); err != nil {
		t.Fatalf("WriteArtifacts: %v", err)
	}

	got, err := os.ReadFile(base + ".pdf")
	if err != nil {
		t.Fatalf("reading pdf: %v", err)
	}
	if !bytes.Equal(got, []byte(minimalPDF)) {
		t.Error("pdf content does not match compiled result")
	}

	records := readCSV(t, base+".csv")
	want := [][]string{titles}
	want = append(want, data...)
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("csv round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteArtifacts_CreatesDirectory(t *testing.T) {
	base := filepath.Join(t.TempDir(), "deep", "nested", "2_2_False")
	err := tableset.WriteArtifacts(base, tableset.NewResult([]byte(minimalPDF)),
		[]string{"title0"}, tableset.Table{{"1"}})
	if err != nil {
		t.Fatalf("WriteArtifacts: %v", err)
	}
	if _, err := os.Stat(base + ".csv"); err != nil {
		t.Fatalf("csv not written: %v", err)
	}

	// Idempotent: writing to the same base again overwrites cleanly.
	err = tableset.WriteArtifacts(base, tableset.NewResult([]byte(minimalPDF)),
		[]string{"title0"}, tableset.Table{{"2"}})
	if err != nil {
		t.Fatalf("WriteArtifacts (second run): %v", err)
	}
	records := readCSV(t, base+".csv")
	if records[1][0] != "2" {
		t.Errorf("second write not visible, cell = %q", records[1][0])
	}
}

func TestWriteArtifacts_QuoteDiscipline(t *testing.T) {
	base := filepath.Join(t.TempDir(), "quoting")
	titles := []string{"title0", "title1"}
	data := tableset.Table{
		{"plain", "with, comma"},
	}

	if err := tableset.WriteArtifacts(base, tableset.NewResult([]byte(minimalPDF)), titles, data); err != nil {
		t.Fatalf("WriteArtifacts: %v", err)
	}

	raw, err := os.ReadFile(base + ".csv")
	if err != nil {
		t.Fatal(err)
	}
	text := string(raw)

	// Minimal quoting with '|' as the quote character: only the field
	// containing a comma is quoted.
	if !strings.Contains(text, "|with, comma|") {
		t.Errorf("comma field not |-quoted:\n%s", text)
	}
	if strings.Contains(text, "|plain|") {
		t.Errorf("plain field needlessly quoted:\n%s", text)
	}
	if !strings.Contains(text, "\r\n") {
		t.Error("records not CRLF-terminated")
	}

	records := readCSV(t, base+".csv")
	if records[1][1] != "with, comma" {
		t.Errorf("quoted field round trip = %q, want %q", records[1][1], "with, comma")
	}
}
