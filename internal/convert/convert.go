// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs the PDF-to-FB2 conversion: validate the input, extract
// page text, build the FB2 tree and write it. Every step is fatal on error and
// nothing is written unless extraction produced text.
package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/phuslu/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/pdf2fb2/internal/extract"
	"github.com/pdiddy/pdf2fb2/internal/fb2"
	"github.com/pdiddy/pdf2fb2/pkg/types"
)

const (
	pdfExt = ".pdf"
	fb2Ext = ".fb2"
)

var (
	// ErrInputNotFound reports a missing input file.
	ErrInputNotFound = errors.New("file not found")
	// ErrNotPDF reports an input without a .pdf extension.
	ErrNotPDF = errors.New("input file must have .pdf extension")
	// ErrNoText reports a readable PDF in which every page is empty.
	ErrNoText = errors.New("failed to extract text from PDF")
)

// ValidateInput checks that path exists and has a .pdf extension, in any case.
func ValidateInput(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: '%s'", ErrInputNotFound, path)
	}
	if !strings.HasSuffix(strings.ToLower(path), pdfExt) {
		return ErrNotPDF
	}
	return nil
}

// DefaultOutputPath replaces the extension of input with .fb2.
func DefaultOutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + fb2Ext
}

// DefaultTitle derives a title from the input's base name without its
// extension: underscores become spaces and each word is capitalized.
func DefaultTitle(input string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return cases.Title(language.Und).String(strings.ReplaceAll(stem, "_", " "))
}

// Converter turns one PDF into one FB2 file per call. Progress goes to out;
// diagnostics go to logger.
type Converter struct {
	backend extract.Backend
	out     io.Writer
	logger  *log.Logger
	now     func() time.Time
}

// New returns a Converter that extracts text with backend.
func New(backend extract.Backend, out io.Writer, logger *log.Logger) *Converter {
	return &Converter{
		backend: backend,
		out:     out,
		logger:  logger,
		now:     time.Now,
	}
}

// Convert performs the conversion described by cfg and returns a report of
// what was written.
func (c *Converter) Convert(cfg types.ConversionConfig) (*types.ConversionReport, error) {
	if err := ValidateInput(cfg.InputPath); err != nil {
		return nil, err
	}

	output := cfg.OutputPath
	if output == "" {
		output = DefaultOutputPath(cfg.InputPath)
	}
	title := cfg.Title
	if title == "" {
		title = DefaultTitle(cfg.InputPath)
	}

	fmt.Fprintf(c.out, "Converting %s to FB2...\n", cfg.InputPath)
	fmt.Fprintf(c.out, "Output file: %s\n", output)

	res, err := extract.Run(c.backend, cfg.InputPath, c.out, c.logger)
	if err != nil {
		return nil, err
	}
	if len(res.Chunks) == 0 {
		return nil, fmt.Errorf("%w %s (%d pages, none with text)", ErrNoText, cfg.InputPath, res.Pages)
	}

	fmt.Fprintln(c.out, "\nCreating FB2 document...")
	book := fb2.Build(res.Chunks, fb2.Metadata{
		Title:      title,
		SourceName: filepath.Base(cfg.InputPath),
	})
	c.logger.Debug().Int("sections", len(book.Body.Sections)).Int("paragraphs", book.ParagraphCount()).Msg("built fb2 tree")

	fmt.Fprintln(c.out, "Saving file...")
	if err := fb2.WriteFile(output, book); err != nil {
		return nil, err
	}
	fmt.Fprintf(c.out, "\n✓ File saved: %s\n", output)

	report := &types.ConversionReport{
		InputPath:     cfg.InputPath,
		OutputPath:    output,
		Title:         title,
		Backend:       c.backend.Name(),
		PagesTotal:    res.Pages,
		PagesRetained: len(res.Chunks),
		Paragraphs:    book.ParagraphCount(),
		ConvertedAt:   c.now().UTC(),
	}
	// The FB2 file is already on disk, so a report failure does not fail the run.
	if cfg.ReportPath != "" {
		if err := WriteReport(report, cfg.ReportPath); err != nil {
			c.logger.Warn().Err(err).Str("path", cfg.ReportPath).Msg("conversion report not written")
		} else {
			c.logger.Info().Str("path", cfg.ReportPath).Msg("wrote conversion report")
		}
	}

	fmt.Fprintln(c.out, "\n✓ Conversion completed successfully!")
	return report, nil
}
