package sqlite

import "database/sql"

// schema is run on every open; statements are idempotent. Monetary columns
// are stored as 2-decimal strings so values survive round-trips exactly;
// NULL means the field was never set.
const schema = `
CREATE TABLE IF NOT EXISTS transactions (
    content_hash         TEXT PRIMARY KEY,
    user_id              TEXT NOT NULL,
    amount               TEXT,
    description          TEXT NOT NULL DEFAULT '',
    transaction_date     TEXT NOT NULL DEFAULT '',
    post_date            TEXT NOT NULL DEFAULT '',
    balance              TEXT,
    category             TEXT NOT NULL DEFAULT '',
    transaction_type     TEXT NOT NULL DEFAULT '',
    memo                 TEXT NOT NULL DEFAULT '',
    address              TEXT NOT NULL DEFAULT '',
    mapping_name         TEXT NOT NULL,
    split_percent        INTEGER NOT NULL DEFAULT 0,
    after_split_amount   TEXT,
    partner_split_amount TEXT,
    need                 INTEGER,
    split_decided        TEXT NOT NULL,
    review_status        TEXT NOT NULL,
    ingested_at          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_user_status
    ON transactions(user_id, review_status);
CREATE INDEX IF NOT EXISTS idx_transactions_date
    ON transactions(transaction_date);

CREATE TABLE IF NOT EXISTS split_rules (
    user_id       TEXT NOT NULL,
    category      TEXT NOT NULL,
    need          INTEGER NOT NULL,
    split_percent INTEGER NOT NULL,
    PRIMARY KEY (user_id, category)
);

CREATE TABLE IF NOT EXISTS file_ledger (
    id           TEXT PRIMARY KEY,
    file_hash    TEXT NOT NULL UNIQUE,
    user_id      TEXT NOT NULL,
    mapping_name TEXT NOT NULL,
    added_at     TEXT NOT NULL
);
`

func migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
