package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dworin/KidBank/internal/currency"
)

// A fresh account number is a random draw from a 900,000-value space; the
// store's unique index arbitrates collisions. 50 redraws is far beyond any
// realistic family-sized account population.
const maxAccountNumberDraws = 50

const defaultStoreTimeout = 10 * time.Second

const (
	defaultDepositDescription    = "Deposit"
	defaultWithdrawalDescription = "Withdrawal"
	initialDepositDescription    = "Initial deposit"
)

// Service is the ledger engine. All balance mutations run inside a single
// database transaction that re-reads the balance under a row lock, so the
// balance update and the transaction append commit or fail as one unit.
type Service interface {
	CreateAccount(ctx context.Context, request CreateAccountRequest) (*AccountSnapshot, error)
	GetAccount(ctx context.Context, number string) (*AccountSnapshot, error)
	ListAccounts(ctx context.Context) ([]AccountSnapshot, error)
	ListTransactions(ctx context.Context, number string, limit int) ([]TransactionSnapshot, error)
	Deposit(ctx context.Context, request TransactionRequest) (*TransactionResult, error)
	Withdraw(ctx context.Context, request TransactionRequest) (*TransactionResult, error)
	Close()
}

type service struct {
	dbPool       *pgxpool.Pool
	idProvider   IDProvider
	numbers      AccountNumberProvider
	timeProvider TimeProvider
	storeTimeout time.Duration
}

func New(dbPool *pgxpool.Pool, idProvider IDProvider, numbers AccountNumberProvider, timeProvider TimeProvider, storeTimeout time.Duration) (Service, error) {
	if storeTimeout <= 0 {
		storeTimeout = defaultStoreTimeout
	}

	return &service{
		dbPool:       dbPool,
		idProvider:   idProvider,
		numbers:      numbers,
		timeProvider: timeProvider,
		storeTimeout: storeTimeout,
	}, nil
}

func (s *service) Close() {
	s.dbPool.Close()
}

func (s *service) CreateAccount(ctx context.Context, request CreateAccountRequest) (*AccountSnapshot, error) {

	firstName := strings.TrimSpace(request.FirstName)
	lastName := strings.TrimSpace(request.LastName)

	if firstName == "" {
		return nil, ErrFirstNameRequired
	}

	if lastName == "" {
		return nil, ErrLastNameRequired
	}

	if !ValidAccountType(request.AccountType) {
		return nil, ErrInvalidAccountType
	}

	if !currency.IsValid(request.Currency) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCurrency, request.Currency)
	}

	if request.InitialDeposit < 0 {
		return nil, ErrNegativeInitialDeposit
	}

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	utc := s.timeProvider.NowUTC()

	var account Account

	for draw := 0; draw < maxAccountNumberDraws; draw++ {
		account = Account{
			ID:          s.idProvider.NextID(),
			Number:      s.numbers.Next(),
			FirstName:   firstName,
			LastName:    lastName,
			AccountType: request.AccountType,
			Currency:    request.Currency,
			Balance:     request.InitialDeposit,
			CreatedAt:   utc,
		}

		err := pgx.BeginTxFunc(ctx, s.dbPool, pgx.TxOptions{}, func(tx pgx.Tx) error {
			err := InsertAccount(ctx, tx, account)

			if err != nil {
				var pgErr *pgconn.PgError

				if errors.As(err, &pgErr) && pgErr.Code == PostgresErrorUniqueViolation {
					return ErrDuplicateAccountNumber
				}

				return fmt.Errorf("insert account failed: %w", err)
			}

			if request.InitialDeposit > 0 {
				err = InsertTransaction(ctx, tx, Transaction{
					ID:           s.idProvider.NextID(),
					AccountID:    account.ID,
					Kind:         TxKindDeposit,
					Amount:       request.InitialDeposit,
					BalanceAfter: request.InitialDeposit,
					Description:  initialDepositDescription,
					CreatedAt:    utc,
				})

				if err != nil {
					return fmt.Errorf("insert initial deposit failed: %w", err)
				}
			}

			return nil
		})

		if errors.Is(err, ErrDuplicateAccountNumber) {
			continue
		}

		if err != nil {
			return nil, s.mapStoreErr(err)
		}

		return toAccountSnapshot(&account), nil
	}

	return nil, fmt.Errorf("%w after %d draws", ErrDuplicateAccountNumber, maxAccountNumberDraws)
}

func (s *service) GetAccount(ctx context.Context, number string) (*AccountSnapshot, error) {
	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	account, err := GetAccountByNumber(ctx, s.dbPool, number)

	if err != nil {
		return nil, s.mapStoreErr(fmt.Errorf("get account failed: %w", err))
	}

	if account == nil {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, number)
	}

	return toAccountSnapshot(account), nil
}

func (s *service) ListAccounts(ctx context.Context) ([]AccountSnapshot, error) {
	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	accounts, err := ListAccounts(ctx, s.dbPool)

	if err != nil {
		return nil, s.mapStoreErr(fmt.Errorf("list accounts failed: %w", err))
	}

	snapshots := make([]AccountSnapshot, len(accounts))

	for i, account := range accounts {
		snapshots[i] = *toAccountSnapshot(&account)
	}

	return snapshots, nil
}

func (s *service) ListTransactions(ctx context.Context, number string, limit int) ([]TransactionSnapshot, error) {
	if limit <= 0 {
		limit = 10
	}

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	account, err := GetAccountByNumber(ctx, s.dbPool, number)

	if err != nil {
		return nil, s.mapStoreErr(fmt.Errorf("list transactions get account failed: %w", err))
	}

	if account == nil {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, number)
	}

	transactions, err := GetTransactionsByAccountNumber(ctx, s.dbPool, number, limit)

	if err != nil {
		return nil, s.mapStoreErr(fmt.Errorf("list transactions failed: %w", err))
	}

	snapshots := make([]TransactionSnapshot, len(transactions))

	for i, txn := range transactions {
		snapshots[i] = toTransactionSnapshot(txn)
	}

	return snapshots, nil
}

func (s *service) Deposit(ctx context.Context, request TransactionRequest) (*TransactionResult, error) {
	return s.applyTransaction(ctx, request, TxKindDeposit)
}

func (s *service) Withdraw(ctx context.Context, request TransactionRequest) (*TransactionResult, error) {
	return s.applyTransaction(ctx, request, TxKindWithdrawal)
}

// applyTransaction is the read-modify-write cycle shared by deposit and
// withdrawal: lock the account row, recompute the balance from the locked
// read, then write the new balance and append the transaction record in the
// same database transaction.
func (s *service) applyTransaction(ctx context.Context, request TransactionRequest, kind TxKind) (*TransactionResult, error) {

	if request.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	utc := s.timeProvider.NowUTC()

	var txn Transaction

	err := pgx.BeginTxFunc(ctx, s.dbPool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		account, err := GetAccountForUpdate(ctx, tx, request.AccountNumber)

		if err != nil {
			return fmt.Errorf("%s get account failed: %w", kind, err)
		}

		if account == nil {
			return fmt.Errorf("%w: %s", ErrAccountNotFound, request.AccountNumber)
		}

		newBalance := account.Balance

		switch kind {
		case TxKindDeposit:
			newBalance += request.Amount
		case TxKindWithdrawal:
			if account.Balance < request.Amount {
				return ErrInsufficientFunds
			}
			newBalance -= request.Amount
		}

		err = UpdateAccountBalance(ctx, tx, account.ID, newBalance)

		if err != nil {
			return fmt.Errorf("%s update balance failed: %w", kind, err)
		}

		txn = Transaction{
			ID:           s.idProvider.NextID(),
			AccountID:    account.ID,
			Kind:         kind,
			Amount:       request.Amount,
			BalanceAfter: newBalance,
			Description:  describe(request.Description, kind),
			CreatedAt:    utc,
		}

		err = InsertTransaction(ctx, tx, txn)

		if err != nil {
			return fmt.Errorf("%s insert transaction failed: %w", kind, err)
		}

		return nil
	})

	if err != nil {
		return nil, s.mapStoreErr(err)
	}

	return &TransactionResult{
		AccountNumber: request.AccountNumber,
		TransactionID: txn.ID,
		Kind:          kind,
		Amount:        request.Amount,
		NewBalance:    txn.BalanceAfter,
		CreatedAt:     utc,
	}, nil
}

func describe(description string, kind TxKind) string {
	if description != "" {
		return description
	}

	if kind == TxKindWithdrawal {
		return defaultWithdrawalDescription
	}

	return defaultDepositDescription
}

func (s *service) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.storeTimeout)
}

// mapStoreErr surfaces deadline expiry as the store-unavailable condition;
// engine sentinels pass through untouched for errors.Is checks.
func (s *service) mapStoreErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}

	return err
}
