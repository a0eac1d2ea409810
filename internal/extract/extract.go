// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls per-page text out of PDF files. A Backend opens a
// file into a Document; Run walks its pages in order and keeps the ones
// whose text is non-empty after trimming.
package extract

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/phuslu/log"

	"github.com/pdiddy/pdf2fb2/pkg/types"
)

var (
	// ErrOpen reports a file that cannot be opened or parsed as a PDF.
	ErrOpen = errors.New("reading PDF")
	// ErrPage reports a page whose text could not be extracted.
	ErrPage = errors.New("extracting page text")
	// ErrUnknownBackend reports an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown extraction backend")
)

// Document is an opened PDF. Pages are numbered from 1.
type Document interface {
	// NumPages returns the page count.
	NumPages() int

	// PageText returns the raw text of page n.
	PageText(n int) (string, error)

	// Close releases the underlying file.
	Close() error
}

// Backend opens PDF files with one particular parsing library.
type Backend interface {
	// Name identifies the backend in config and reports.
	Name() types.ExtractionBackend

	// Open parses the PDF at path.
	Open(path string) (Document, error)
}

// Backends lists the supported backend names, default first.
func Backends() []types.ExtractionBackend {
	return []types.ExtractionBackend{types.BackendLedongthuc, types.BackendPdfcpu}
}

// NewBackend returns the backend with the given name. An empty name selects
// the default.
func NewBackend(name types.ExtractionBackend) (Backend, error) {
	switch name {
	case "", types.BackendLedongthuc:
		return ledongthucBackend{}, nil
	case types.BackendPdfcpu:
		return newPdfcpuBackend(), nil
	default:
		names := make([]string, 0, len(Backends()))
		for _, b := range Backends() {
			names = append(names, string(b))
		}
		return nil, fmt.Errorf("%w %q (expected %s)", ErrUnknownBackend, name, strings.Join(names, " or "))
	}
}

// Result is the outcome of walking a document.
type Result struct {
	// Pages is the document's page count.
	Pages int

	// Chunks holds the trimmed text of every non-empty page, in page order.
	Chunks []string
}

// Run opens path with b and extracts its text chunks. The file is closed
// before Run returns.
func Run(b Backend, path string, w io.Writer, logger *log.Logger) (Result, error) {
	doc, err := open(b, path)
	if err != nil {
		return Result{}, err
	}
	defer doc.Close()

	logger.Debug().Str("backend", string(b.Name())).Str("path", path).Msg("opened pdf")
	return Pages(doc, w, logger)
}

// Pages walks doc from the first page to the last, printing progress to w.
// Any page error aborts the walk.
func Pages(doc Document, w io.Writer, logger *log.Logger) (Result, error) {
	n := doc.NumPages()
	fmt.Fprintf(w, "Total pages: %d\n", n)

	result := Result{Pages: n}
	for i := 1; i <= n; i++ {
		fmt.Fprintf(w, "Processing page %d...\n", i)
		start := time.Now()

		text, err := pageText(doc, i)
		if err != nil {
			return Result{}, err
		}

		trimmed := strings.TrimSpace(text)
		logger.Debug().Int("page", i).Int("chars", len(trimmed)).Dur("elapsed", time.Since(start)).Msg("page extracted")
		if trimmed == "" {
			continue
		}
		result.Chunks = append(result.Chunks, trimmed)
	}
	return result, nil
}

// open calls b.Open, converting parser panics into ErrOpen.
func open(b Backend, path string) (doc Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("%w %s: %v", ErrOpen, path, r)
		}
	}()
	doc, err = b.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpen, path, err)
	}
	return doc, nil
}

// pageText calls doc.PageText, converting parser panics into ErrPage.
func pageText(doc Document, n int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w on page %d: %v", ErrPage, n, r)
		}
	}()
	text, err = doc.PageText(n)
	if err != nil {
		return "", fmt.Errorf("%w on page %d: %w", ErrPage, n, err)
	}
	return text, nil
}
