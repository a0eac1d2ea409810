// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fb2 builds and serializes minimal FictionBook 2.0 documents from
// extracted page text.
package fb2

import "encoding/xml"

const (
	// Namespace is the FictionBook 2.0 default namespace.
	Namespace = "http://www.gribuser.ru/xml/fictionbook/2.0"
	// XLinkNamespace is bound to the "l" prefix on the root element.
	XLinkNamespace = "http://www.w3.org/1999/xlink"
)

// Placeholder metadata. These are not read from the PDF.
const (
	PlaceholderFirstName = "Unknown"
	PlaceholderLastName  = "Author"
	PlaceholderDate      = "2024"
	DefaultLang          = "en"
)

// FictionBook is the document root. Field order is element order.
type FictionBook struct {
	XMLName     xml.Name    `xml:"FictionBook"`
	Xmlns       string      `xml:"xmlns,attr"`
	XmlnsL      string      `xml:"xmlns:l,attr"`
	Description Description `xml:"description"`
	Body        Body        `xml:"body"`
}

// Description holds the book metadata.
type Description struct {
	TitleInfo   TitleInfo   `xml:"title-info"`
	PublishInfo PublishInfo `xml:"publish-info"`
}

// TitleInfo carries title, author, annotation, date and language.
type TitleInfo struct {
	BookTitle  string     `xml:"book-title"`
	Author     Author     `xml:"author"`
	Annotation Annotation `xml:"annotation"`
	Date       string     `xml:"date"`
	Lang       string     `xml:"lang"`
}

// Author is a single book author.
type Author struct {
	FirstName string `xml:"first-name"`
	LastName  string `xml:"last-name"`
}

// Annotation is a short free-text description.
type Annotation struct {
	Paragraphs []string `xml:"p"`
}

// PublishInfo is always emitted empty.
type PublishInfo struct{}

// Body holds the title page followed by one section per retained page.
type Body struct {
	Title    Title     `xml:"title"`
	Sections []Section `xml:"section"`
}

// Title is the title page block.
type Title struct {
	Paragraphs []string `xml:"p"`
}

// Section groups the paragraphs of one source page. It may be empty.
type Section struct {
	Paragraphs []string `xml:"p"`
}

// ParagraphCount returns the number of paragraph elements across all sections.
func (b *FictionBook) ParagraphCount() int {
	n := 0
	for _, s := range b.Body.Sections {
		n += len(s.Paragraphs)
	}
	return n
}
