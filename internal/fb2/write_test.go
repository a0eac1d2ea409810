// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fb2

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBook() *FictionBook {
	return Build([]string{"Hello\n\nWorld", "  Second   page  "}, Metadata{
		Title:      "My Book",
		SourceName: "my_book.pdf",
	})
}

func TestMarshal_Layout(t *testing.T) {
	data, err := Marshal(sampleBook())
	require.NoError(t, err)
	out := string(data)

	assert.False(t, strings.HasPrefix(out, "<?xml"), "output must not start with an XML declaration")
	assert.True(t, strings.HasPrefix(out, `<FictionBook xmlns="`+Namespace+`" xmlns:l="`+XLinkNamespace+`">`))
	assert.True(t, strings.HasSuffix(out, "</FictionBook>\n"))

	assert.Contains(t, out, "\n  <description>\n    <title-info>\n      <book-title>My Book</book-title>")
	assert.Contains(t, out, "\n        <first-name>Unknown</first-name>\n        <last-name>Author</last-name>")
	assert.Contains(t, out, "<p>Converted from my_book.pdf</p>")
	assert.Contains(t, out, "<date>2024</date>")
	assert.Contains(t, out, "<lang>en</lang>")
	assert.Contains(t, out, "<publish-info></publish-info>")
	assert.Contains(t, out, "\n  <body>\n    <title>\n      <p>My Book</p>\n    </title>")
	assert.Contains(t, out, "\n    <section>\n      <p>Hello</p>\n      <p>World</p>\n    </section>")
	assert.Contains(t, out, "\n    <section>\n      <p>Second page</p>\n    </section>")
}

func TestMarshal_DecodesBack(t *testing.T) {
	data, err := Marshal(sampleBook())
	require.NoError(t, err)

	var got FictionBook
	require.NoError(t, xml.Unmarshal(data, &got))

	assert.Equal(t, "My Book", got.Description.TitleInfo.BookTitle)
	assert.Equal(t, []string{"My Book"}, got.Body.Title.Paragraphs)
	require.Len(t, got.Body.Sections, 2)
	assert.Equal(t, []string{"Hello", "World"}, got.Body.Sections[0].Paragraphs)
	assert.Equal(t, []string{"Second page"}, got.Body.Sections[1].Paragraphs)
}

func TestMarshal_SectionsSelectable(t *testing.T) {
	data, err := Marshal(sampleBook())
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	require.NoError(t, err)

	sections := doc.Find("section")
	require.Equal(t, 2, sections.Length())

	var first []string
	sections.Eq(0).Find("p").Each(func(_ int, s *goquery.Selection) {
		first = append(first, s.Text())
	})
	assert.Equal(t, []string{"Hello", "World"}, first)
	assert.Equal(t, "Second page", sections.Eq(1).Find("p").Text())
}

func TestMarshal_EscapesText(t *testing.T) {
	book := Build([]string{"a < b & c > d"}, Metadata{Title: `Tom & "Jerry"`, SourceName: "x.pdf"})
	data, err := Marshal(book)
	require.NoError(t, err)

	var got FictionBook
	require.NoError(t, xml.Unmarshal(data, &got))
	assert.Equal(t, `Tom & "Jerry"`, got.Description.TitleInfo.BookTitle)
	assert.Equal(t, []string{"a < b & c > d"}, got.Body.Sections[0].Paragraphs)
}

func TestMarshal_EmptySection(t *testing.T) {
	book := Build([]string{"\n\n"}, Metadata{Title: "T", SourceName: "t.pdf"})
	data, err := Marshal(book)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<section></section>")
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.fb2")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is much longer than nothing"), 0o644))

	require.NoError(t, WriteFile(path, sampleBook()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<FictionBook"))
	assert.NotContains(t, string(data), "stale")
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "book.fb2")
	err := WriteFile(path, sampleBook())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
