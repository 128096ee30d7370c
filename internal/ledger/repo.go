package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	PostgresErrorUniqueViolation = "23505"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx, so every store
// operation can run standalone or inside an open transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func InsertAccount(ctx context.Context, dbtx DBTX, account Account) error {
	sql := `INSERT INTO accounts (id, account_number, first_name, last_name, account_type, currency, balance, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := dbtx.Exec(ctx, sql,
		account.ID, account.Number, account.FirstName, account.LastName,
		account.AccountType, account.Currency, account.Balance, account.CreatedAt)

	return err
}

func GetAccountByNumber(ctx context.Context, dbtx DBTX, number string) (*Account, error) {
	sql := `SELECT id, account_number, first_name, last_name, account_type, currency, balance, created_at
FROM accounts WHERE account_number = $1`

	rows, err := dbtx.Query(ctx, sql, number)

	if err != nil {
		return nil, err
	}

	account, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[Account])

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &account, nil
}

// GetAccountForUpdate locks the account row for the rest of the enclosing
// transaction. This is the per-account critical section: a concurrent
// deposit/withdraw on the same account blocks here until commit.
func GetAccountForUpdate(ctx context.Context, dbtx DBTX, number string) (*Account, error) {
	sql := `SELECT id, account_number, first_name, last_name, account_type, currency, balance, created_at
FROM accounts WHERE account_number = $1 FOR UPDATE`

	rows, err := dbtx.Query(ctx, sql, number)

	if err != nil {
		return nil, err
	}

	account, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[Account])

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &account, nil
}

func ListAccounts(ctx context.Context, dbtx DBTX) ([]Account, error) {
	sql := `SELECT id, account_number, first_name, last_name, account_type, currency, balance, created_at
FROM accounts ORDER BY last_name, first_name`

	rows, err := dbtx.Query(ctx, sql)

	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[Account])
}

func UpdateAccountBalance(ctx context.Context, dbtx DBTX, accountID int64, balance int64) error {
	sql := "UPDATE accounts SET balance = $1 WHERE id = $2"

	tag, err := dbtx.Exec(ctx, sql, balance, accountID)

	if err != nil {
		return err
	}

	if tag.RowsAffected() != 1 {
		return fmt.Errorf("%w: account id %d", ErrAccountNotFound, accountID)
	}

	return nil
}

func InsertTransaction(ctx context.Context, dbtx DBTX, txn Transaction) error {
	sql := `INSERT INTO transactions (id, account_id, tx_kind, amount, balance_after, description, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := dbtx.Exec(ctx, sql,
		txn.ID, txn.AccountID, txn.Kind, txn.Amount, txn.BalanceAfter, txn.Description, txn.CreatedAt)

	return err
}

// GetTransactionsByAccountNumber returns up to limit transactions, most
// recent first. An unknown number yields an empty slice; the engine owns
// the existence check where the contract requires one.
func GetTransactionsByAccountNumber(ctx context.Context, dbtx DBTX, number string, limit int) ([]Transaction, error) {
	sql := `SELECT t.id, t.account_id, t.tx_kind, t.amount, t.balance_after, t.description, t.created_at
FROM transactions t
         JOIN accounts a ON t.account_id = a.id
WHERE a.account_number = $1
ORDER BY t.created_at DESC, t.id DESC
LIMIT $2`

	rows, err := dbtx.Query(ctx, sql, number, limit)

	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[Transaction])
}
