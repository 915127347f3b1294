package driven

import (
	"context"

	"github.com/cboldwyn/dc-label/internal/core/domain"
)

// TableSource loads raw tabular data for the engine. Implementations
// parse one source file into a header-named string table; all typing
// happens later in the merge.
type TableSource interface {
	// LoadTable reads the table at path. An unreadable file is an
	// error; a readable file with no data rows returns
	// domain.ErrEmptyTable.
	LoadTable(ctx context.Context, path string) (domain.RawTable, error)
}
