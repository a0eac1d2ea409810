// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionReport summarizes a completed conversion.
type ConversionReport struct {
	// InputPath is the source PDF.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is the FB2 file that was written.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Title is the resolved book title.
	Title string `json:"title" yaml:"title"`

	// Backend is the extraction library that produced the text.
	Backend ExtractionBackend `json:"backend" yaml:"backend"`

	// PagesTotal is the page count reported by the PDF.
	PagesTotal int `json:"pages_total" yaml:"pages_total"`

	// PagesRetained counts pages with non-empty text (one section each).
	PagesRetained int `json:"pages_retained" yaml:"pages_retained"`

	// Paragraphs counts paragraph elements across all sections.
	Paragraphs int `json:"paragraphs" yaml:"paragraphs"`

	// ConvertedAt is the UTC time the output was written.
	ConvertedAt time.Time `json:"converted_at" yaml:"converted_at"`
}
