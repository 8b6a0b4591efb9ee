package extract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	"deskorg/internal/config"
	"deskorg/internal/faults"
	"deskorg/internal/logging"
	"deskorg/internal/textutil"
)

// DefaultTextChars bounds the number of runes returned for text formats.
const DefaultTextChars = 10000

// Reader turns a random-access body into text.
type Reader interface {
	Read(ctx context.Context, body io.ReaderAt, size int64) (string, error)
}

// ReaderFunc adapts a function to Reader.
type ReaderFunc func(ctx context.Context, body io.ReaderAt, size int64) (string, error)

// Read calls f.
func (f ReaderFunc) Read(ctx context.Context, body io.ReaderAt, size int64) (string, error) {
	return f(ctx, body, size)
}

// Extractor reads text samples through an afero filesystem.
type Extractor struct {
	fs        afero.Fs
	pdf       Reader
	word      Reader
	textChars int
	logger    *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPDFReader installs the reader used for .pdf files.
func WithPDFReader(r Reader) Option {
	return func(e *Extractor) { e.pdf = r }
}

// WithWordReader installs the reader used for .doc and .docx files.
func WithWordReader(r Reader) Option {
	return func(e *Extractor) { e.word = r }
}

// WithTextLimit bounds text samples to n runes. Non-positive values keep the
// default.
func WithTextLimit(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.textChars = n
		}
	}
}

// New constructs an Extractor without rich readers unless options add them.
func New(fs afero.Fs, logger *slog.Logger, opts ...Option) *Extractor {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	e := &Extractor{
		fs:        fs,
		textChars: DefaultTextChars,
		logger:    logging.NewComponentLogger(logger, "extractor"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// NewFromConfig wires the built-in PDF and DOCX readers according to cfg.
func NewFromConfig(fs afero.Fs, cfg config.Extraction, logger *slog.Logger) *Extractor {
	opts := []Option{WithTextLimit(cfg.TextChars)}
	if !cfg.DisablePDF {
		opts = append(opts, WithPDFReader(&PDFReader{MaxPages: cfg.PDFPages}))
	}
	if !cfg.DisableDocx {
		opts = append(opts, WithWordReader(&DocxReader{MaxParagraphs: cfg.DocxParagraphs}))
	}
	return New(fs, logger, opts...)
}

// Extract returns a text sample for the file at path. ext is the lower-cased
// extension with its leading dot.
func (e *Extractor) Extract(ctx context.Context, path, ext string) string {
	switch ext {
	case ".txt", ".md", ".rtf":
		text, err := e.readText(path)
		if err != nil {
			e.absorb(ctx, path, "read text", err)
			return ""
		}
		return text
	case ".pdf":
		return e.readRich(ctx, path, "pdf", e.pdf)
	case ".doc", ".docx":
		return e.readRich(ctx, path, "word", e.word)
	default:
		return textutil.Stem(filepath.Base(path))
	}
}

func (e *Extractor) readText(path string) (string, error) {
	f, err := e.fs.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return DecodeText(f, e.textChars)
}

func (e *Extractor) readRich(ctx context.Context, path, format string, reader Reader) string {
	if reader == nil {
		e.fileLogger(ctx, path).Debug("no reader installed", logging.String("format", format))
		return ""
	}
	text, err := e.readWith(ctx, path, reader)
	if err != nil {
		e.absorb(ctx, path, "read "+format, err)
		return ""
	}
	return text
}

func (e *Extractor) readWith(ctx context.Context, path string, reader Reader) (text string, err error) {
	f, err := e.fs.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("reader panic: %v", r)
		}
	}()
	return reader.Read(ctx, f, info.Size())
}

func (e *Extractor) absorb(ctx context.Context, path, operation string, err error) {
	wrapped := faults.Wrap(faults.ErrExtraction, "extract", operation, filepath.Base(path), err)
	e.fileLogger(ctx, path).Debug("extraction failed, using empty text", logging.Error(wrapped))
}

func (e *Extractor) fileLogger(ctx context.Context, path string) *slog.Logger {
	if _, ok := faults.FileFromContext(ctx); !ok {
		ctx = faults.WithFile(ctx, filepath.Base(path))
	}
	return logging.WithContext(ctx, e.logger)
}
