package extract

import (
	"io"

	"github.com/h2non/filetype"
)

// sniffSize is large enough for the OOXML matcher to see the first entries.
const sniffSize = 8192

func readHead(body io.ReaderAt, size int64) ([]byte, error) {
	n := int64(sniffSize)
	if size < n {
		n = size
	}
	head := make([]byte, n)
	read, err := body.ReadAt(head, 0)
	if err != nil && err != io.EOF {
		return nil, err
	}
	return head[:read], nil
}

func looksLikePDF(head []byte) bool {
	return filetype.Is(head, "pdf")
}

func looksLikeOOXML(head []byte) bool {
	return filetype.Is(head, "docx") || filetype.Is(head, "zip")
}
