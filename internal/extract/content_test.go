// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentText(t *testing.T) {
	tests := []struct {
		name   string
		stream string
		want   string
	}{
		{
			name:   "single Tj on one line",
			stream: "BT /F1 12.00 Tf ET\nBT 31.19 794.57 Td (Hello PDF) Tj ET",
			want:   "Hello PDF\n",
		},
		{
			name:   "operator directly after string",
			stream: "BT 31.19 801.44 Td (Hello PDF)Tj ET",
			want:   "Hello PDF\n",
		},
		{
			name:   "TJ array ignores kerning numbers",
			stream: "BT 10 10 Td [(Hel) -20 (lo)] TJ ET",
			want:   "Hello\n",
		},
		{
			name:   "T star and quote operators break lines",
			stream: "BT (one) Tj T* (two) Tj (three) ' ET",
			want:   "one\ntwo\nthree\n",
		},
		{
			name:   "escapes and nested parentheses",
			stream: `BT (a \(b\) \\ (c) \101\102) Tj ET`,
			want:   "a (b) \\ (c) AB\n",
		},
		{
			name:   "hex string",
			stream: "BT <48656C6C6F> Tj ET",
			want:   "Hello\n",
		},
		{
			name:   "dictionaries and names are skipped",
			stream: "/Span <</MCID 0>> BDC BT /F1 9 Tf (x) Tj ET EMC",
			want:   "x\n",
		},
		{
			name:   "comments are skipped",
			stream: "% (ignored) Tj\nBT (kept) Tj ET",
			want:   "kept\n",
		},
		{
			name:   "latin-1 bytes become valid utf-8",
			stream: "BT (caf\\351) Tj ET",
			want:   "café\n",
		},
		{
			name:   "no text operators",
			stream: "q 1 0 0 1 0 0 cm 0 0 m 10 10 l S Q",
			want:   "",
		},
		{
			name:   "strings without show operator are dropped",
			stream: "(orphan) BT (shown) Tj ET",
			want:   "shown\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, contentText([]byte(tt.stream)))
		})
	}
}
