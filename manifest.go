package tableset

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/porticus-lab/go-table-dataset/internal/pdfinfo"
)

// ManifestName is the file written beside the artifact pairs after a
// successful sweep.
const ManifestName = "manifest.json"

// Manifest records one sweep run: which artifact pairs were produced and
// their content checksums, so a consumer can verify a fixture set is
// complete and untampered.
type Manifest struct {
	// RunID uniquely identifies this sweep run.
	RunID string `json:"run_id"`

	// GeneratedAt is when the sweep finished, in UTC.
	GeneratedAt time.Time `json:"generated_at"`

	// Engine names the compiler backend ("pdflatex", "chrome" or "custom").
	Engine string `json:"engine"`

	// Artifacts lists one entry per artifact pair, in generation order.
	Artifacts []ManifestEntry `json:"artifacts"`
}

// ManifestEntry describes one artifact pair.
type ManifestEntry struct {
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
	Filling string `json:"filling"`

	// Base is the shared filename stem of the pair, without directory or
	// extension, e.g. "2_2_False".
	Base string `json:"base"`

	PDFSHA256 string `json:"pdf_sha256"`
	CSVSHA256 string `json:"csv_sha256"`

	// PDFPages is the page count of the PDF where it could be determined
	// from uncompressed page objects; 0 otherwise.
	PDFPages int `json:"pdf_pages,omitempty"`
}

// newManifestEntry builds the entry for a freshly written pair. The CSV
// is hashed from disk so the checksum covers the exact bytes a consumer
// will read.
func newManifestEntry(rows, cols int, mode FillMode, name, base string, pdf []byte) (ManifestEntry, error) {
	csvData, err := os.ReadFile(base + ".csv")
	if err != nil {
		return ManifestEntry{}, fmt.Errorf("tableset: hashing %s.csv: %w", name, err)
	}

	// Page count is advisory; engines that pack page objects into
	// compressed object streams yield 0 here.
	pages, _ := pdfinfo.PageCount(pdf)

	return ManifestEntry{
		Rows:      rows,
		Columns:   cols,
		Filling:   mode.String(),
		Base:      name,
		PDFSHA256: hashHex(pdf),
		CSVSHA256: hashHex(csvData),
		PDFPages:  pages,
	}, nil
}

func hashHex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func writeManifest(dir string, engine Engine, entries []ManifestEntry) error {
	m := Manifest{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Engine:      engineName(engine),
		Artifacts:   entries,
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("tableset: encoding manifest: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tableset: creating output directory: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(filepath.Join(dir, ManifestName), data, 0o644); err != nil {
		return fmt.Errorf("tableset: writing manifest: %w", err)
	}
	return nil
}

func engineName(e Engine) string {
	switch e.(type) {
	case *LaTeXEngine:
		return "pdflatex"
	case *ChromeEngine:
		return "chrome"
	default:
		return "custom"
	}
}
