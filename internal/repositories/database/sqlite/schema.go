package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS journal_entries (
    journal_id  TEXT PRIMARY KEY,
    entry_date  TEXT NOT NULL,
    narration   TEXT NOT NULL DEFAULT '',
    created_at  TEXT NOT NULL,
    created_by  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_journal_entries_order
    ON journal_entries (entry_date DESC, created_at DESC, journal_id DESC);

CREATE TABLE IF NOT EXISTS journal_postings (
    journal_id   TEXT NOT NULL REFERENCES journal_entries (journal_id) ON DELETE CASCADE,
    line_no      INTEGER NOT NULL,
    account_name TEXT NOT NULL CHECK (account_name <> ''),
    debit        TEXT NOT NULL DEFAULT '0',
    credit       TEXT NOT NULL DEFAULT '0',
    PRIMARY KEY (journal_id, line_no)
);

CREATE TABLE IF NOT EXISTS invoices (
    invoice_id       TEXT PRIMARY KEY,
    invoice_number   TEXT NOT NULL,
    customer_name    TEXT NOT NULL,
    customer_address TEXT NOT NULL DEFAULT '',
    customer_gst     TEXT NOT NULL DEFAULT '',
    invoice_date     TEXT NOT NULL,
    items            TEXT NOT NULL DEFAULT '[]',
    subtotal         TEXT NOT NULL DEFAULT '0',
    total_gst        TEXT NOT NULL DEFAULT '0',
    total            TEXT NOT NULL DEFAULT '0',
    created_at       TEXT NOT NULL,
    created_by       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_invoices_invoice_date ON invoices (invoice_date);

CREATE TABLE IF NOT EXISTS firm_profile (
    id              INTEGER PRIMARY KEY CHECK (id = 1),
    firm_name       TEXT NOT NULL DEFAULT '',
    firm_type       TEXT NOT NULL DEFAULT '',
    address         TEXT NOT NULL DEFAULT '',
    city            TEXT NOT NULL DEFAULT '',
    state           TEXT NOT NULL DEFAULT '',
    pincode         TEXT NOT NULL DEFAULT '',
    email           TEXT NOT NULL DEFAULT '',
    phone           TEXT NOT NULL DEFAULT '',
    pan_number      TEXT NOT NULL DEFAULT '',
    gst_number      TEXT NOT NULL DEFAULT '',
    tan_number      TEXT NOT NULL DEFAULT '',
    bank_name       TEXT NOT NULL DEFAULT '',
    account_number  TEXT NOT NULL DEFAULT '',
    ifsc_code       TEXT NOT NULL DEFAULT '',
    account_type    TEXT NOT NULL DEFAULT '',
    created_at      TEXT NOT NULL,
    created_by      TEXT NOT NULL,
    last_updated_at TEXT NOT NULL,
    last_updated_by TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS inventory_items (
    item_id         TEXT PRIMARY KEY,
    name            TEXT NOT NULL,
    supplier        TEXT NOT NULL DEFAULT '',
    invoice_number  TEXT NOT NULL DEFAULT '',
    purchase_cost   TEXT NOT NULL DEFAULT '0',
    sales_price     TEXT NOT NULL DEFAULT '0',
    hsn_code        TEXT NOT NULL DEFAULT '',
    gst_percent     TEXT NOT NULL DEFAULT '0',
    quantity        INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
    created_at      TEXT NOT NULL,
    created_by      TEXT NOT NULL,
    last_updated_at TEXT NOT NULL,
    last_updated_by TEXT NOT NULL
);
`

// InitializeSchema creates any missing tables. It is safe to run on every start.
func InitializeSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
