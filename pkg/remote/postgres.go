package remote

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/formcheck/pkg/validation"
)

// RowQuerier is the part of a pgx connection used by the existence rules.
// *pgx.Conn, *pgxpool.Pool and pgx.Tx satisfy it.
type RowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresExists fails with CodeNotFound when query reports false.
// The query receives the value as $1 and must return a single bool column,
// e.g. SELECT EXISTS(SELECT 1 FROM invites WHERE code = $1).
func PostgresExists(db RowQuerier, query, message string) validation.AsyncFunc {
	return postgresRule(db, query, func(exists bool) (validation.Outcome, bool) {
		return validation.Failure().WithCode(CodeNotFound).WithMessage(message), !exists
	})
}

// PostgresAbsent fails with CodeTaken when query reports true.
func PostgresAbsent(db RowQuerier, query, message string) validation.AsyncFunc {
	return postgresRule(db, query, func(exists bool) (validation.Outcome, bool) {
		return validation.Failure().WithCode(CodeTaken).WithMessage(message), exists
	})
}

func postgresRule(db RowQuerier, query string, judge func(exists bool) (validation.Outcome, bool)) validation.AsyncFunc {
	return func(ctx context.Context, in validation.InputState, _ validation.Inputs, progress validation.ProgressFunc) (validation.Outcome, error) {
		if strings.TrimSpace(in.Value) == "" {
			return validation.Success(), nil
		}

		progress(0, "querying")
		var exists bool
		if err := db.QueryRow(ctx, query, in.Value).Scan(&exists); err != nil {
			return validation.Outcome{}, fmt.Errorf("%w: %w", ErrLookup, err)
		}
		progress(100, "queried")

		if out, failed := judge(exists); failed {
			return out, nil
		}
		return validation.Success(), nil
	}
}
