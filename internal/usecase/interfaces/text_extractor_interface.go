package interfaces

import "context"

// ITextExtractor turns an in-memory document into plain text.
type ITextExtractor interface {
	ExtractText(ctx context.Context, document []byte) (string, error)
}
