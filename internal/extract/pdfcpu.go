// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/pdf2fb2/pkg/types"
)

// pdfcpuBackend parses the file with pdfcpu and reads text-showing operators
// from each page's decoded content stream. Strings are decoded byte-per-rune,
// so fonts with multi-byte encodings produce unreadable text.
type pdfcpuBackend struct {
	conf *model.Configuration
}

func newPdfcpuBackend() *pdfcpuBackend {
	// Keep pdfcpu from installing its config directory under $HOME.
	api.DisableConfigDir()
	return &pdfcpuBackend{conf: model.NewDefaultConfiguration()}
}

func (*pdfcpuBackend) Name() types.ExtractionBackend { return types.BackendPdfcpu }

func (b *pdfcpuBackend) Open(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	ctx, err := api.ReadValidateAndOptimize(f, b.conf)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}
	return &pdfcpuDocument{file: f, ctx: ctx}, nil
}

type pdfcpuDocument struct {
	file *os.File
	ctx  *model.Context
}

func (d *pdfcpuDocument) NumPages() int { return d.ctx.PageCount }

func (d *pdfcpuDocument) PageText(n int) (string, error) {
	r, err := pdfcpu.ExtractPageContent(d.ctx, n)
	if err != nil {
		return "", err
	}
	if r == nil {
		return "", nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return contentText(data), nil
}

func (d *pdfcpuDocument) Close() error { return d.file.Close() }
