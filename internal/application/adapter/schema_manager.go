package adapter

import "context"

// SchemaManager ensures the persisted schema exists before queries run.
type SchemaManager interface {
	// EnsureSchema creates missing tables and columns. It never drops data and
	// is cheap when the schema already matches.
	EnsureSchema(ctx context.Context) error
}
