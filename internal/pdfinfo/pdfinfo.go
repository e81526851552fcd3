// Package pdfinfo performs lightweight structural inspection of PDF
// binaries: enough to tell that a generated file is an openable document
// and how many pages it declares, without a full object parser.
package pdfinfo

import (
	"bytes"
	"errors"
)

// ErrNotPDF is returned for data that does not carry the PDF magic header.
var ErrNotPDF = errors.New("pdfinfo: not a PDF document")

// ErrTruncated is returned when the end-of-file marker is missing, which
// usually means a write was cut short.
var ErrTruncated = errors.New("pdfinfo: missing %%EOF marker")

// Validate reports whether data looks like a complete PDF document: a
// %PDF- header and a %%EOF marker.
func Validate(data []byte) error {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return ErrNotPDF
	}
	if !bytes.Contains(data, []byte("%%EOF")) {
		return ErrTruncated
	}
	return nil
}

// Version returns the version string from the header, e.g. "1.4", or ""
// if data is not a PDF.
func Version(data []byte) string {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return ""
	}
	rest := data[5:]
	end := 0
	for end < len(rest) && end < 8 && rest[end] != '\r' && rest[end] != '\n' {
		end++
	}
	return string(rest[:end])
}

// PageCount scans for uncompressed page objects and returns how many it
// found. Page dictionaries packed into compressed object streams
// (PDF 1.5+) are invisible to this scan, in which case an error is
// returned rather than a misleading zero-confidence count.
func PageCount(data []byte) (int, error) {
	if err := Validate(data); err != nil {
		return 0, err
	}
	n := countPageObjects(data)
	if n == 0 {
		return 0, errors.New("pdfinfo: no visible page objects")
	}
	return n, nil
}

// countPageObjects counts occurrences of /Type /Page, excluding the
// /Type /Pages tree nodes.
func countPageObjects(data []byte) int {
	typeKey := []byte("/Type")
	pageName := []byte("/Page")

	n := 0
	i := 0
	for {
		j := bytes.Index(data[i:], typeKey)
		if j < 0 {
			return n
		}
		k := i + j + len(typeKey)
		for k < len(data) && isWhitespace(data[k]) {
			k++
		}
		if bytes.HasPrefix(data[k:], pageName) {
			rest := data[k+len(pageName):]
			if len(rest) == 0 || !isNameChar(rest[0]) {
				n++
			}
		}
		i = k
	}
}

// isWhitespace reports PDF whitespace characters.
func isWhitespace(b byte) bool {
	switch b {
	case 0x00, '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

// isNameChar reports whether b would extend a PDF name token, which is
// how /Page is told apart from /Pages.
func isNameChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
