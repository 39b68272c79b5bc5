package booking

import (
	"context"
	"database/sql"

	"github.com/kparturi/shop-backend/pkg/dbmetrics"
)

// Re-export the dbmetrics executor interfaces for consumers of this package.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions. Satisfied by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
