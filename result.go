package tableset

import (
	"bytes"
	"encoding/base64"
	"io"
	"os"
)

// Result holds a compiled PDF and provides helpers for common output
// forms: raw bytes, base64, streaming readers, and file output.
//
// Every [Engine] returns a Result from Compile. Its methods may be called
// any number of times; the underlying data is never modified.
type Result struct {
	data []byte
}

// NewResult wraps raw PDF bytes in a Result. Custom [Engine]
// implementations use this to build their return value.
func NewResult(data []byte) *Result {
	return &Result{data: data}
}

// Bytes returns the raw PDF content.
func (r *Result) Bytes() []byte {
	return r.data
}

// Base64 returns the PDF encoded as a standard base64 string (RFC 4648).
func (r *Result) Base64() string {
	return base64.StdEncoding.EncodeToString(r.data)
}

// Reader returns a [*bytes.Reader] over the PDF content, suitable for any
// API that accepts an [io.Reader].
func (r *Result) Reader() *bytes.Reader {
	return bytes.NewReader(r.data)
}

// WriteTo writes the full PDF content to w. It implements [io.WriterTo].
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.data)
	return int64(n), err
}

// WriteToFile writes the PDF to the file at path, creating it if needed
// and truncating any existing file.
func (r *Result) WriteToFile(path string, perm os.FileMode) error {
	return os.WriteFile(path, r.data, perm)
}

// Len returns the size of the PDF in bytes.
func (r *Result) Len() int {
	return len(r.data)
}
