package ledger

import "time"

type CreateAccountRequest struct {
	FirstName      string
	LastName       string
	AccountType    AccountType
	Currency       string
	InitialDeposit int64
}

type TransactionRequest struct {
	AccountNumber string
	Amount        int64
	Description   string
}

// AccountSnapshot is the read result handed to callers and the formatter.
// Monetary values stay currency-agnostic minor units; rendering is the
// formatter's job.
type AccountSnapshot struct {
	Number      string
	FirstName   string
	LastName    string
	AccountType AccountType
	Currency    string
	Balance     int64
	CreatedAt   time.Time
}

type TransactionSnapshot struct {
	ID           int64
	Kind         TxKind
	Amount       int64
	BalanceAfter int64
	Description  string
	CreatedAt    time.Time
}

type TransactionResult struct {
	AccountNumber string
	TransactionID int64
	Kind          TxKind
	Amount        int64
	NewBalance    int64
	CreatedAt     time.Time
}

func toAccountSnapshot(a *Account) *AccountSnapshot {
	return &AccountSnapshot{
		Number:      a.Number,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		AccountType: a.AccountType,
		Currency:    a.Currency,
		Balance:     a.Balance,
		CreatedAt:   a.CreatedAt,
	}
}

func toTransactionSnapshot(t Transaction) TransactionSnapshot {
	return TransactionSnapshot{
		ID:           t.ID,
		Kind:         t.Kind,
		Amount:       t.Amount,
		BalanceAfter: t.BalanceAfter,
		Description:  t.Description,
		CreatedAt:    t.CreatedAt,
	}
}
