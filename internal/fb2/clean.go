// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fb2

import "strings"

// paragraphSeparator splits a page's text into paragraph candidates.
const paragraphSeparator = "\n\n"

// Clean collapses every whitespace run, newlines included, into a single
// space and drops leading and trailing whitespace. Clean is idempotent.
func Clean(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// SplitParagraphs splits chunk on blank lines, cleans each candidate and
// drops the ones that clean to empty. Order is preserved.
func SplitParagraphs(chunk string) []string {
	var paras []string
	for _, candidate := range strings.Split(chunk, paragraphSeparator) {
		if p := Clean(candidate); p != "" {
			paras = append(paras, p)
		}
	}
	return paras
}
