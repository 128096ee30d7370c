// Package audit installs a trigger-based change log over the ledger tables.
// The engine never reads it; tests use it to show exactly which rows each
// operation touched.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

type Entry struct {
	ID        int64            `db:"id"`
	TableName string           `db:"table_name"`
	Operation string           `db:"operation"`
	RowData   *json.RawMessage `db:"row_data"`
	TxID      *int64           `db:"txid"`
	ChangedAt time.Time        `db:"changed_at"`
}

type Manager struct {
	tablePrefix string
}

func New(tablePrefix string) *Manager {
	return &Manager{tablePrefix: tablePrefix}
}

func (m *Manager) logTable() string {
	return m.tablePrefix + "_change_logs"
}

var createTableSQL = `
CREATE TABLE IF NOT EXISTS __LOG_TABLE
(
    id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    table_name TEXT NOT NULL,
    operation  TEXT NOT NULL,
    row_data   JSONB,
    txid       BIGINT,
    changed_at TIMESTAMPTZ DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx___LOG_TABLE_table_name ON __LOG_TABLE (table_name);
`

var createTriggerFuncSQL = `
CREATE OR REPLACE FUNCTION __LOG_TABLE_trigger()
    RETURNS TRIGGER
    LANGUAGE plpgsql
AS
$$
BEGIN
    INSERT INTO __LOG_TABLE(table_name, operation, row_data, txid, changed_at)
    VALUES (TG_TABLE_NAME,
            TG_OP,
            CASE WHEN TG_OP = 'DELETE' THEN TO_JSONB(OLD) ELSE TO_JSONB(NEW) END,
            TXID_CURRENT(),
            CLOCK_TIMESTAMP());
    RETURN CASE WHEN TG_OP = 'DELETE' THEN OLD ELSE NEW END;
END;
$$;
`

var createTriggersSQL = `
DO
$$
    DECLARE
        tbl RECORD;
    BEGIN
        FOR tbl IN SELECT table_name
                   FROM information_schema.tables
                   WHERE table_schema = CURRENT_SCHEMA()
                     AND table_name NOT LIKE '\_\_%'
            LOOP
                EXECUTE FORMAT('DROP TRIGGER IF EXISTS %I ON %I', '__LOG_TABLE_' || tbl.table_name, tbl.table_name);
                EXECUTE FORMAT(
                        'CREATE TRIGGER %I AFTER INSERT OR UPDATE OR DELETE ON %I FOR EACH ROW EXECUTE FUNCTION __LOG_TABLE_trigger()',
                        '__LOG_TABLE_' || tbl.table_name, tbl.table_name);
            END LOOP;
    END
$$;
`

// Setup creates the change-log table and attaches the trigger to every
// non-internal table in the current schema.
func (m *Manager) Setup(ctx context.Context, dsn string) error {
	conn, err := pgx.Connect(ctx, dsn)

	if err != nil {
		return fmt.Errorf("connect to DB failed: %w", err)
	}

	defer conn.Close(ctx)

	for _, template := range []string{createTableSQL, createTriggerFuncSQL, createTriggersSQL} {
		sql := strings.ReplaceAll(template, "__LOG_TABLE", m.logTable())

		_, err = conn.Exec(ctx, sql)

		if err != nil {
			return fmt.Errorf("change log setup failed: %w", err)
		}
	}

	return nil
}

func (m *Manager) Logs(ctx context.Context, conn *pgx.Conn, tableNames ...string) ([]Entry, error) {
	sql := "SELECT id, table_name, operation, row_data, txid, changed_at FROM " + m.logTable() + " WHERE table_name = ANY($1) ORDER BY id"

	rows, err := conn.Query(ctx, sql, tableNames)

	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[Entry])
}

// Render formats entries grouped per database transaction, one row per line.
func (m *Manager) Render(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	var lastTx int64 = -1

	for _, e := range entries {
		txid := int64(0)
		if e.TxID != nil {
			txid = *e.TxID
		}

		if txid != lastTx {
			fmt.Fprintf(&b, "tx %d @ %s\n", txid, e.ChangedAt.Format(time.RFC3339Nano))
			lastTx = txid
		}

		fmt.Fprintf(&b, "  %-6s %-12s %s\n", e.Operation, e.TableName, renderRow(e.RowData))
	}

	return b.String()
}

func renderRow(data *json.RawMessage) string {
	if data == nil {
		return "(no row data)"
	}

	var obj map[string]any
	if err := json.Unmarshal(*data, &obj); err != nil {
		return "(invalid row data)"
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, obj[k]))
	}

	return strings.Join(parts, " ")
}
