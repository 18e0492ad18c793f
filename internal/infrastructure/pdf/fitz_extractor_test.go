package pdf

import (
	"context"
	"errors"
	"testing"

	"inspection_estimator/internal/usecase/interfaces"
)

func TestFitzExtractor_ExtractText_RejectsInvalidPayloads(t *testing.T) {
	e := NewFitzExtractor(nil)

	t.Run("empty payload", func(t *testing.T) {
		_, err := e.ExtractText(context.Background(), nil)
		if !errors.Is(err, ErrEmptyDocument) || !errors.Is(err, interfaces.ErrInvalidDocument) {
			t.Fatalf("expected ErrEmptyDocument, got %v", err)
		}
	})

	t.Run("not a pdf", func(t *testing.T) {
		_, err := e.ExtractText(context.Background(), []byte("PK\x03\x04 zip archive"))
		if !errors.Is(err, ErrNotPDF) || !errors.Is(err, interfaces.ErrInvalidDocument) {
			t.Fatalf("expected ErrNotPDF, got %v", err)
		}
	})
}

func TestIsPDF(t *testing.T) {
	cases := map[string]bool{
		"%PDF-1.7\n...": true,
		"%PDF-":         true,
		"%PDF":          false,
		"":              false,
		" %PDF-1.4":     false,
	}
	for in, want := range cases {
		if got := IsPDF([]byte(in)); got != want {
			t.Fatalf("IsPDF(%q) = %v, want %v", in, got, want)
		}
	}
}
