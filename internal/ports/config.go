package ports

import (
	"context"

	"github.com/alexisbeaulieu97/tablestyles/internal/domain/template"
)

// DocumentLoader reads template documents from an external source.
//
// Error mapping expectations:
//   - io/fs.ErrNotExist → ErrCodeNotFound
//   - syntax, schema or grammar failures → ErrCodeValidation / ErrCodeFormat / ErrCodeConflict
//   - context cancellation → the context error
//   - unexpected I/O issues → ErrCodeInternal with wrapped cause
type DocumentLoader interface {
	// Load returns a fully validated, normalised document.
	Load(ctx context.Context, path string) (template.Document, error)
}

// DocumentWriter persists template documents. The format is chosen from the
// path extension.
type DocumentWriter interface {
	Save(ctx context.Context, path string, doc template.Document) error
}
