package extract

import (
	"errors"
	"testing"
)

func TestTextPlainFile(t *testing.T) {
	doc := Document{Name: "resume.TXT", Data: []byte("Jane Smith\njane@example.com")}

	text, err := Text(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Jane Smith\njane@example.com" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestTextUnsupportedExtension(t *testing.T) {
	for _, name := range []string{"resume.doc", "resume.png", "resume"} {
		_, err := Text(Document{Name: name, Data: []byte("x")})
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("%s: expected ErrUnsupportedFormat, got %v", name, err)
		}
	}
}

func TestTextCorruptPDF(t *testing.T) {
	_, err := Text(Document{Name: "resume.pdf", Data: []byte("not a pdf at all")})

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Format != "pdf" {
		t.Fatalf("expected pdf format in error, got %q", parseErr.Format)
	}
}

func TestTextCorruptDocx(t *testing.T) {
	_, err := Text(Document{Name: "resume.docx", Data: []byte("not a zip archive")})

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Format != "docx" {
		t.Fatalf("expected docx format in error, got %q", parseErr.Format)
	}
}

func TestDocumentExt(t *testing.T) {
	cases := map[string]string{
		"resume.pdf":      "pdf",
		"resume.tar.DOCX": "docx",
		"resume":          "",
	}
	for name, want := range cases {
		if got := (Document{Name: name}).Ext(); got != want {
			t.Fatalf("%s: expected ext %q, got %q", name, want, got)
		}
	}
}
