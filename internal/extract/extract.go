// Package extract converts uploaded resume documents into plain text.
package extract

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Document is an uploaded file: its declared name and raw bytes. The format is
// derived from the name's extension.
type Document struct {
	Name string
	Data []byte
}

// Ext returns the lowercased extension of the document name without the dot.
func (d Document) Ext() string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(d.Name), "."))
}

// Text extracts plain text from the document. Unknown extensions fail with
// ErrUnsupportedFormat; bytes that cannot be parsed for the claimed format
// fail with a *ParseError.
func Text(doc Document) (string, error) {
	switch ext := doc.Ext(); ext {
	case "txt":
		return string(doc.Data), nil
	case "pdf":
		return pdfText(doc.Data)
	case "docx":
		return docxText(doc.Data)
	default:
		return "", unsupported(ext)
	}
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ParseError{Format: "pdf", Err: err}
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ParseError{Format: "pdf", Err: err}
		}
		b.WriteString(text)
	}

	// A well-formed but empty result usually means an encrypted or image-only
	// document. Treat it the same as a parse failure.
	if strings.TrimSpace(b.String()) == "" {
		return "", &ParseError{Format: "pdf", Err: errNoText}
	}

	return b.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ParseError{Format: "docx", Err: err}
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
