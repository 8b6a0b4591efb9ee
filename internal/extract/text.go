package extract

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeText reads at most limit runes from r. UTF-16 input is honoured when
// it starts with a byte order mark; everything else is read as UTF-8 with
// invalid sequences replaced by U+FFFD.
func DecodeText(r io.Reader, limit int) (string, error) {
	if limit <= 0 {
		limit = DefaultTextChars
	}
	// Four bytes per rune plus a BOM covers the worst case for both encodings.
	raw := io.LimitReader(r, int64(limit)*4+4)
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(raw, decoder))
	if err != nil {
		return "", err
	}
	return truncateRunes(string(data), limit), nil
}

func truncateRunes(s string, limit int) string {
	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}
	return s
}
