//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/pdiddy/pdf2fb2/internal/pdftest"
)

const sampleDir = "sample"

// samplePages is the text of the generated sample book.
var samplePages = [][]string{
	{"Chapter One", "", "It was a bright cold day in April."},
	{},
	{"Chapter Two", "", "The clocks were striking thirteen."},
}

// Sample writes sample/sample_book.pdf, a three-page PDF with a blank middle page.
func Sample() error {
	if err := os.MkdirAll(sampleDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", sampleDir, err)
	}
	path := filepath.Join(sampleDir, "sample_book.pdf")
	if err := pdftest.WriteFile(path, samplePages); err != nil {
		return err
	}
	fmt.Println("Wrote", path)
	return nil
}

// Convert builds the binary and converts the sample PDF to FB2.
func Convert() error {
	mg.Deps(Build, Sample)
	return sh.RunV(filepath.Join(binDir, binName), filepath.Join(sampleDir, "sample_book.pdf"))
}
