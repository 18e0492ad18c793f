// Package pdf extracts the text layer of uploaded inspection reports with MuPDF.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"inspection_estimator/internal/usecase/interfaces"

	"github.com/gen2brain/go-fitz"
	"go.uber.org/zap"
)

var (
	ErrEmptyDocument = fmt.Errorf("%w: empty payload", interfaces.ErrInvalidDocument)
	ErrNotPDF        = fmt.Errorf("%w: payload is not a pdf", interfaces.ErrInvalidDocument)
	ErrNoPages       = fmt.Errorf("%w: pdf has no pages", interfaces.ErrInvalidDocument)
)

var magic = []byte("%PDF-")

// IsPDF reports whether b starts with the PDF header.
func IsPDF(b []byte) bool {
	return bytes.HasPrefix(b, magic)
}

type FitzExtractor struct {
	logger *zap.Logger
}

var _ interfaces.ITextExtractor = (*FitzExtractor)(nil)

func NewFitzExtractor(logger *zap.Logger) *FitzExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FitzExtractor{logger: logger.Named("pdf")}
}

// ExtractText returns the text of every page, in page order, separated by a newline.
func (e *FitzExtractor) ExtractText(ctx context.Context, document []byte) (string, error) {
	if len(document) == 0 {
		return "", ErrEmptyDocument
	}
	if !IsPDF(document) {
		return "", ErrNotPDF
	}

	doc, err := fitz.NewFromMemory(document)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	if pageCount == 0 {
		return "", ErrNoPages
	}

	var b strings.Builder
	for page := 0; page < pageCount; page++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		text, err := doc.Text(page)
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", page+1, err)
		}
		if page > 0 {
			b.WriteString("\n")
		}
		b.WriteString(text)
	}

	e.logger.Debug("extracted", zap.Int("pages", pageCount), zap.Int("bytes", b.Len()))
	return b.String(), nil
}
