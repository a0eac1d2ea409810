// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/pdf2fb2/pkg/types"
)

// ledongthucBackend reads the embedded text layer with github.com/ledongthuc/pdf.
// Scanned, image-only pages yield no text.
type ledongthucBackend struct{}

func (ledongthucBackend) Name() types.ExtractionBackend { return types.BackendLedongthuc }

func (ledongthucBackend) Open(path string) (Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	return &ledongthucDocument{file: f, reader: r}, nil
}

type ledongthucDocument struct {
	file   *os.File
	reader *pdf.Reader
}

func (d *ledongthucDocument) NumPages() int { return d.reader.NumPage() }

func (d *ledongthucDocument) PageText(n int) (string, error) {
	p := d.reader.Page(n)
	if p.V.IsNull() {
		return "", nil
	}
	return p.GetPlainText(nil)
}

func (d *ledongthucDocument) Close() error { return d.file.Close() }
