package booking

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema создает таблицу bookings и уникальный индекс, если их ещё нет
func EnsureSchema(ctx context.Context, db DBExecutor) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("%w: EnsureSchema - apply schema: %v", ErrExecQuery, err)
	}
	return nil
}
