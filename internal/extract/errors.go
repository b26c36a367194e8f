package extract

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when the file extension is not one of
// pdf, docx or txt.
var ErrUnsupportedFormat = errors.New("unsupported file type, use PDF, DOCX or TXT")

var errNoText = errors.New("no text extracted (possibly encrypted)")

func unsupported(ext string) error {
	if ext == "" {
		return fmt.Errorf("file has no extension: %w", ErrUnsupportedFormat)
	}
	return fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
}

// ParseError reports that the document bytes could not be parsed for the
// format claimed by the extension.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s document: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
