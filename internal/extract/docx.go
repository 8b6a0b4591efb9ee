package extract

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// DefaultDocxParagraphs bounds the number of paragraphs read from a DOCX.
const DefaultDocxParagraphs = 50

const (
	documentPart     = "word/document.xml"
	maxDocumentBytes = 32 << 20
)

var (
	errNotOOXML    = errors.New("body is not an OOXML package")
	errMissingBody = errors.New("word/document.xml not found")
)

// DocxReader extracts the first MaxParagraphs paragraphs of a Word document.
// Legacy binary .doc files fail the sniff and yield an error.
type DocxReader struct {
	MaxParagraphs int
}

// Read implements Reader.
func (r *DocxReader) Read(ctx context.Context, body io.ReaderAt, size int64) (string, error) {
	head, err := readHead(body, size)
	if err != nil {
		return "", err
	}
	if !looksLikeOOXML(head) {
		return "", errNotOOXML
	}

	archive, err := zip.NewReader(body, size)
	if err != nil {
		return "", err
	}
	for _, f := range archive.File {
		if f.Name != documentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()
		limit := r.MaxParagraphs
		if limit <= 0 {
			limit = DefaultDocxParagraphs
		}
		paragraphs, err := readParagraphs(ctx, io.LimitReader(rc, maxDocumentBytes), limit)
		if err != nil {
			return "", err
		}
		return strings.Join(paragraphs, "\n"), nil
	}
	return "", errMissingBody
}

// readParagraphs walks WordprocessingML tokens collecting the text runs of
// each w:p element.
func readParagraphs(ctx context.Context, r io.Reader, limit int) ([]string, error) {
	decoder := xml.NewDecoder(r)
	var (
		paragraphs []string
		current    strings.Builder
		depth      int
		inText     bool
	)
	for len(paragraphs) < limit {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			if len(paragraphs) > 0 {
				break
			}
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				if depth == 0 {
					current.Reset()
				}
				depth++
			case "t":
				inText = depth > 0
			case "tab":
				if depth > 0 {
					current.WriteByte('\t')
				}
			case "br", "cr":
				if depth > 0 {
					current.WriteByte('\n')
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if depth > 0 {
					depth--
				}
				if depth == 0 {
					paragraphs = append(paragraphs, current.String())
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}
	return paragraphs, nil
}
