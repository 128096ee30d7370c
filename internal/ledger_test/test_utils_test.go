package ledger_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/dworin/KidBank/internal/audit"
	"github.com/dworin/KidBank/internal/ledger"
	"github.com/dworin/KidBank/internal/ledgermigrations"
)

var dbConnStr string
var changeLog = audit.New("__debug")

func setupLedgerService(t *testing.T) ledger.Service {
	t.Helper()

	pool, err := pgxpool.New(t.Context(), dbConnStr)

	if err != nil {
		t.Fatal(err)
	}

	idProvider, err := ledger.NewIDProvider(0)

	if err != nil {
		t.Fatal(err)
	}

	service, err := ledger.New(
		pool,
		idProvider,
		ledger.NewAccountNumberProvider(),
		ledger.NewTimeProvider(),
		10*time.Second,
	)

	if err != nil {
		t.Fatal(err)
	}

	return service
}

func logTableChanges(t *testing.T, tableNames ...string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

	defer cancel()

	conn, err := pgx.Connect(ctx, dbConnStr)

	if err != nil {
		t.Fatal(err)
	}

	defer conn.Close(ctx)

	logs, err := changeLog.Logs(ctx, conn, tableNames...)

	if err != nil {
		t.Fatal(err)
	}

	t.Logf("\n%s", changeLog.Render(logs))
}

func resetDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

	defer cancel()

	conn, err := pgx.Connect(ctx, dbConnStr)

	if err != nil {
		t.Fatal(err)
	}

	defer conn.Close(ctx)

	rows, err := conn.Query(ctx, "SELECT table_name FROM information_schema.tables WHERE table_schema = CURRENT_SCHEMA() AND table_name NOT LIKE '\\_\\_ledger%'")

	if err != nil {
		t.Fatal(err)
	}

	tables, err := pgx.CollectRows(rows, pgx.RowTo[string])

	if err != nil {
		t.Fatal(err)
	}

	for _, table := range tables {
		_, err := conn.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")

		if err != nil {
			t.Fatal(err)
		}
	}
}

func createAccount(t *testing.T, service ledger.Service, firstName, lastName, currencyCode string, initialDeposit int64) *ledger.AccountSnapshot {
	t.Helper()

	account, err := service.CreateAccount(t.Context(), ledger.CreateAccountRequest{
		FirstName:      firstName,
		LastName:       lastName,
		AccountType:    ledger.AccountTypeChecking,
		Currency:       currencyCode,
		InitialDeposit: initialDeposit,
	})

	if err != nil {
		t.Fatal(err)
	}

	return account
}

func createTestAccount(t *testing.T, service ledger.Service) *ledger.AccountSnapshot {
	t.Helper()

	return createAccount(t, service, "test", "account_"+uuid.NewString(), "USD", 0)
}

func assertAccountHasBalance(t *testing.T, service ledger.Service, number string, balance int64) {
	t.Helper()

	account, err := service.GetAccount(t.Context(), number)

	if err != nil {
		t.Fatal(err)
	}

	if account.Balance != balance {
		t.Fatalf("expected balance %d, got %d", balance, account.Balance)
	}
}

func countTransactions(t *testing.T, number string) int {
	t.Helper()

	conn, err := pgx.Connect(t.Context(), dbConnStr)

	if err != nil {
		t.Fatal(err)
	}

	defer conn.Close(t.Context())

	transactions, err := ledger.GetTransactionsByAccountNumber(t.Context(), conn, number, 1000)

	if err != nil {
		t.Fatal(err)
	}

	return len(transactions)
}

func TestMain(m *testing.M) {
	dbName := "kidbank"
	dbUser := "db_user"
	dbPassword := "db_password"

	ctx := context.Background()

	postgresContainer, err := postgres.Run(
		ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)

	if err != nil {
		panic(err)
	}

	dbConnStr, err = postgresContainer.ConnectionString(ctx, "sslmode=disable")

	if err != nil {
		panic(err)
	}

	err = ledgermigrations.Up(ctx, 999, dbConnStr)

	if err != nil {
		panic(err)
	}

	err = changeLog.Setup(ctx, dbConnStr)

	if err != nil {
		panic(err)
	}

	code := m.Run()

	err = testcontainers.TerminateContainer(postgresContainer)

	if err != nil {
		panic(err)
	}

	os.Exit(code)
}
