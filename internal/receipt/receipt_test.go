package receipt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dworin/KidBank/internal/ledger"
)

var testTime = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

func testAccount() *ledger.AccountSnapshot {
	return &ledger.AccountSnapshot{
		Number:      "123456",
		FirstName:   "Alice",
		LastName:    "Lee",
		AccountType: ledger.AccountTypeChecking,
		Currency:    "USD",
		Balance:     123456,
		CreatedAt:   testTime,
	}
}

func TestReceipt(t *testing.T) {
	result := &ledger.TransactionResult{
		AccountNumber: "123456",
		TransactionID: 42,
		Kind:          ledger.TxKindDeposit,
		Amount:        2500,
		NewBalance:    123456,
		CreatedAt:     testTime,
	}

	out, err := Receipt(testAccount(), result, testTime)
	require.NoError(t, err)

	assert.Contains(t, out, "KIDBANK TERMINAL SYSTEM")
	assert.Contains(t, out, "TRANSACTION RECEIPT")
	assert.Contains(t, out, "DATE/TIME: 03/14/2025 03:09:26 PM")
	assert.Contains(t, out, "TRANSACTION ID: 42")
	assert.Contains(t, out, "ACCOUNT HOLDER: Alice Lee")
	assert.Contains(t, out, "ACCOUNT NUMBER: 123456")
	assert.Contains(t, out, "ACCOUNT TYPE: CHECKING")
	assert.Contains(t, out, "TRANSACTION TYPE: DEPOSIT")
	assert.Contains(t, out, "AMOUNT: $25.00")
	assert.Contains(t, out, "NEW BALANCE: $1,234.56")

	for _, l := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(l), 80)
	}
}

func TestReceiptSuffixCurrency(t *testing.T) {
	account := testAccount()
	account.Currency = "BB"

	result := &ledger.TransactionResult{
		AccountNumber: "123456",
		TransactionID: 7,
		Kind:          ledger.TxKindWithdrawal,
		Amount:        500,
		NewBalance:    122956,
		CreatedAt:     testTime,
	}

	out, err := Receipt(account, result, testTime)
	require.NoError(t, err)

	assert.Contains(t, out, "TRANSACTION TYPE: WITHDRAWAL")
	assert.Contains(t, out, "AMOUNT: 5.00 BB")
	assert.Contains(t, out, "NEW BALANCE: 1,229.56 BB")
}

func TestStatement(t *testing.T) {
	transactions := []ledger.TransactionSnapshot{
		{
			ID:           2,
			Kind:         ledger.TxKindWithdrawal,
			Amount:       3000,
			BalanceAfter: 123456,
			Description:  "Withdrawal",
			CreatedAt:    testTime,
		},
		{
			ID:           1,
			Kind:         ledger.TxKindDeposit,
			Amount:       126456,
			BalanceAfter: 126456,
			Description:  "Deposit",
			CreatedAt:    testTime.Add(-time.Hour),
		},
	}

	out, err := Statement(testAccount(), transactions, testTime)
	require.NoError(t, err)

	assert.Contains(t, out, "ACCOUNT STATEMENT")
	assert.Contains(t, out, "CURRENCY: US Dollars")
	assert.Contains(t, out, "CURRENT BALANCE: $1,234.56")
	assert.Contains(t, out, "RECENT TRANSACTIONS")

	// One row per transaction, withdrawals signed negative.
	assert.Contains(t, out, "WITHDRAWAL -")
	assert.Contains(t, out, "+")
	assert.Contains(t, out, "$30.00")
	assert.Contains(t, out, "$1,264.56")
	assert.NotContains(t, out, "No transactions on record")
}

func TestStatementEmpty(t *testing.T) {
	out, err := Statement(testAccount(), nil, testTime)
	require.NoError(t, err)

	assert.Contains(t, out, "No transactions on record")
}

func TestDetailedStatement(t *testing.T) {
	transactions := []ledger.TransactionSnapshot{
		{
			ID:           2,
			Kind:         ledger.TxKindDeposit,
			Amount:       2500,
			BalanceAfter: 123456,
			Description:  "Birthday money",
			CreatedAt:    testTime,
		},
		{
			ID:           1,
			Kind:         ledger.TxKindWithdrawal,
			Amount:       100,
			BalanceAfter: 120956,
			CreatedAt:    testTime.Add(-time.Hour),
		},
	}

	out, err := DetailedStatement(testAccount(), transactions, testTime)
	require.NoError(t, err)

	assert.Contains(t, out, "DETAILED ACCOUNT STATEMENT")
	assert.Contains(t, out, "TRANSACTION #1")
	assert.Contains(t, out, "TRANSACTION #2")
	assert.Contains(t, out, "Amount: +$25.00")
	assert.Contains(t, out, "Amount: -$1.00")
	assert.Contains(t, out, "Notes: Birthday money")

	// The second transaction has no notes, so exactly one Notes line.
	assert.Equal(t, 1, strings.Count(out, "Notes:"))
}

func TestUnknownCurrencyFails(t *testing.T) {
	account := testAccount()
	account.Currency = "XYZ"

	_, err := Statement(account, nil, testTime)
	assert.Error(t, err)

	_, err = DetailedStatement(account, nil, testTime)
	assert.Error(t, err)
}
