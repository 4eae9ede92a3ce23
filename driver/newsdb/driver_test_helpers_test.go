package newsdb

import "github.com/jackc/pgx/v5"

func pgxErrNoRows() error {
	return pgx.ErrNoRows
}
