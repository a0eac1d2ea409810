// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractionBackend identifies the PDF text-extraction library.
type ExtractionBackend string

const (
	BackendLedongthuc ExtractionBackend = "ledongthuc"
	BackendPdfcpu     ExtractionBackend = "pdfcpu"
)

// ConversionConfig holds the settings for one PDF-to-FB2 conversion.
type ConversionConfig struct {
	// InputPath is the source PDF.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is the FB2 destination. Empty means the input path with
	// its extension replaced by ".fb2".
	OutputPath string `json:"output_path,omitempty" yaml:"output_path,omitempty"`

	// Title overrides the book title. Empty means derive it from the input
	// file name.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Backend selects the extraction library (default ledongthuc).
	Backend ExtractionBackend `json:"backend" yaml:"backend"`

	// ReportPath, when set, receives a YAML conversion report after a
	// successful write.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`
}
