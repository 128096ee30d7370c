package ledgermigrations

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type Migration struct {
	Version     int
	Description string
	Up          func(ctx context.Context, tx pgx.Tx) error
	Down        func(ctx context.Context, tx pgx.Tx) error
}

func createAccounts(ctx context.Context, tx pgx.Tx) error {
	sql := `
	CREATE TABLE accounts (
		id             BIGINT PRIMARY KEY,
		account_number TEXT NOT NULL UNIQUE,
		first_name     TEXT NOT NULL,
		last_name      TEXT NOT NULL,
		account_type   TEXT NOT NULL,
		currency       TEXT NOT NULL,
		balance        BIGINT NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL
	);`
	_, err := tx.Exec(ctx, sql)
	return err
}

func dropAccounts(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `DROP TABLE accounts;`)
	return err
}

func createTransactions(ctx context.Context, tx pgx.Tx) error {
	sql := `
	CREATE TABLE transactions (
		id            BIGINT PRIMARY KEY,
		account_id    BIGINT NOT NULL REFERENCES accounts (id),
		tx_kind       TEXT NOT NULL,
		amount        BIGINT NOT NULL,
		balance_after BIGINT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL
	);`
	_, err := tx.Exec(ctx, sql)
	return err
}

func dropTransactions(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `DROP TABLE transactions;`)
	return err
}

func createTransactionsIndex(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `CREATE INDEX idx_transactions_account_created ON transactions (account_id, created_at);`)
	return err
}

func dropTransactionsIndex(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `DROP INDEX idx_transactions_account_created;`)
	return err
}

var Migrations = []Migration{
	{Version: 1, Description: "Create accounts table", Up: createAccounts, Down: dropAccounts},
	{Version: 2, Description: "Create transactions table", Up: createTransactions, Down: dropTransactions},
	{Version: 3, Description: "Index transactions by account and time", Up: createTransactionsIndex, Down: dropTransactionsIndex},
}
