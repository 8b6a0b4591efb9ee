package extract

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DefaultPDFPages bounds the number of pages read from a PDF.
const DefaultPDFPages = 5

var errNotPDF = errors.New("body is not a pdf")

// PDFReader extracts plain text from the first MaxPages pages of a PDF.
type PDFReader struct {
	MaxPages int
}

// Read implements Reader.
func (r *PDFReader) Read(ctx context.Context, body io.ReaderAt, size int64) (string, error) {
	head, err := readHead(body, size)
	if err != nil {
		return "", err
	}
	if !looksLikePDF(head) {
		return "", errNotPDF
	}

	doc, err := pdf.NewReader(body, size)
	if err != nil {
		return "", err
	}

	limit := r.MaxPages
	if limit <= 0 {
		limit = DefaultPDFPages
	}
	pages := doc.NumPage()
	if pages < limit {
		limit = pages
	}

	var b strings.Builder
	for i := 1; i <= limit; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := doc.Page(i)
		if page.V.IsNull() || page.V.Key("Contents").IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(content)
	}
	return b.String(), nil
}
