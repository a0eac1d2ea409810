// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fb2

import (
	"encoding/xml"
	"fmt"
	"os"
)

const indent = "  "

// Marshal renders book as UTF-8 XML indented by two spaces. No XML
// declaration is emitted; the output ends with a newline.
func Marshal(book *FictionBook) ([]byte, error) {
	out, err := xml.MarshalIndent(book, "", indent)
	if err != nil {
		return nil, fmt.Errorf("marshaling fb2: %w", err)
	}
	return append(out, '\n'), nil
}

// WriteFile marshals book and writes it to path, replacing any existing file.
func WriteFile(path string, book *FictionBook) error {
	data, err := Marshal(book)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
