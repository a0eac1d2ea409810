// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftest writes small text PDFs for tests and sample data.
package pdftest

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"
)

const lineHeight = 6

// Build renders one page per entry in pages. Each page is a list of lines;
// an empty line leaves vertical space, and a page with no lines is blank.
// Streams are left uncompressed.
func Build(pages [][]string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCompression(false)
	doc.SetFont("Helvetica", "", 12)

	for _, lines := range pages {
		doc.AddPage()
		for _, line := range lines {
			if line != "" {
				doc.Cell(0, lineHeight, line)
			}
			doc.Ln(lineHeight)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders pages and writes the PDF to path.
func WriteFile(path string, pages [][]string) error {
	data, err := Build(pages)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
