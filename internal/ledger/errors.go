package ledger

import (
	"errors"
)

var ErrFirstNameRequired = errors.New("first name is required")
var ErrLastNameRequired = errors.New("last name is required")
var ErrInvalidAccountType = errors.New("account type must be checking or savings")
var ErrUnknownCurrency = errors.New("unknown currency")
var ErrNegativeInitialDeposit = errors.New("initial deposit cannot be negative")
var ErrInvalidAmount = errors.New("amount must be positive")
var ErrAccountNotFound = errors.New("account not found")
var ErrInsufficientFunds = errors.New("insufficient funds")
var ErrDuplicateAccountNumber = errors.New("account number already exists")
var ErrStoreUnavailable = errors.New("store unavailable")
