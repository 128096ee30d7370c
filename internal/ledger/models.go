package ledger

import (
	"time"
)

type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
)

func ValidAccountType(t AccountType) bool {
	return t == AccountTypeChecking || t == AccountTypeSavings
}

type TxKind string

const (
	TxKindDeposit    TxKind = "deposit"
	TxKindWithdrawal TxKind = "withdrawal"
)

// Account is the stored row. ID is the internal stable key transactions
// reference; Number is the public 6-digit identifier callers see.
type Account struct {
	ID          int64       `db:"id"`
	Number      string      `db:"account_number"`
	FirstName   string      `db:"first_name"`
	LastName    string      `db:"last_name"`
	AccountType AccountType `db:"account_type"`
	Currency    string      `db:"currency"`
	Balance     int64       `db:"balance"`
	CreatedAt   time.Time   `db:"created_at"`
}

// Transaction rows are append-only: inserted once, never updated or deleted.
type Transaction struct {
	ID           int64     `db:"id"`
	AccountID    int64     `db:"account_id"`
	Kind         TxKind    `db:"tx_kind"`
	Amount       int64     `db:"amount"`
	BalanceAfter int64     `db:"balance_after"`
	Description  string    `db:"description"`
	CreatedAt    time.Time `db:"created_at"`
}
