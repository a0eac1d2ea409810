// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fb2

// Metadata is the caller-supplied part of the description.
type Metadata struct {
	// Title is used verbatim for book-title and the title page.
	Title string
	// SourceName is the input file's base name, quoted in the annotation.
	SourceName string
}

// Build constructs a FictionBook with one section per chunk, in order.
// A chunk whose paragraphs all clean to empty still yields an empty section.
func Build(chunks []string, meta Metadata) *FictionBook {
	book := &FictionBook{
		Xmlns:  Namespace,
		XmlnsL: XLinkNamespace,
		Description: Description{
			TitleInfo: TitleInfo{
				BookTitle: meta.Title,
				Author: Author{
					FirstName: PlaceholderFirstName,
					LastName:  PlaceholderLastName,
				},
				Annotation: Annotation{
					Paragraphs: []string{"Converted from " + meta.SourceName},
				},
				Date: PlaceholderDate,
				Lang: DefaultLang,
			},
		},
		Body: Body{
			Title:    Title{Paragraphs: []string{meta.Title}},
			Sections: make([]Section, 0, len(chunks)),
		},
	}

	for _, chunk := range chunks {
		book.Body.Sections = append(book.Body.Sections, Section{
			Paragraphs: SplitParagraphs(chunk),
		})
	}
	return book
}
