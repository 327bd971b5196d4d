// Package persistence provides the SQLite trade ledger: an opt-in audit log
// of transaction attempts. The trading core never depends on it.
package persistence

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/tradewinds/internal/engine"
)

// Ledger wraps a SQLite connection for trade audit storage.
type Ledger struct {
	conn *sqlx.DB
}

// Open opens or creates a ledger database at the given path.
func Open(path string) (*Ledger, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}

	l := &Ledger{conn: conn}
	if err := l.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return l, nil
}

// Close closes the database connection.
func (l *Ledger) Close() error {
	return l.conn.Close()
}

func (l *Ledger) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS trade_attempts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		recorded_at TEXT NOT NULL,
		settlement TEXT NOT NULL,
		region TEXT NOT NULL,
		season TEXT NOT NULL,
		merchant_id TEXT NOT NULL,
		cargo TEXT NOT NULL,
		method TEXT NOT NULL,
		role TEXT NOT NULL,
		availability TEXT NOT NULL,
		skill INTEGER NOT NULL,
		quantity_ep INTEGER NOT NULL,
		supply INTEGER NOT NULL,
		demand INTEGER NOT NULL,
		eq_state TEXT NOT NULL,
		total_price TEXT NOT NULL,
		breakdown_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_attempts_settlement
		ON trade_attempts(settlement, season);
	`
	_, err := l.conn.Exec(schema)
	return err
}

// Entry is one ledger row.
type Entry struct {
	ID           int64  `db:"id" json:"id"`
	RecordedAt   string `db:"recorded_at" json:"recorded_at"`
	Settlement   string `db:"settlement" json:"settlement"`
	Region       string `db:"region" json:"region"`
	Season       string `db:"season" json:"season"`
	MerchantID   string `db:"merchant_id" json:"merchant_id"`
	Cargo        string `db:"cargo" json:"cargo"`
	Method       string `db:"method" json:"method"`
	Role         string `db:"role" json:"role"`
	Availability string `db:"availability" json:"availability"`
	Skill        int    `db:"skill" json:"skill"`
	QuantityEP   int    `db:"quantity_ep" json:"quantity_ep"`
	Supply       int    `db:"supply" json:"supply"`
	Demand       int    `db:"demand" json:"demand"`
	EqState      string `db:"eq_state" json:"eq_state"`
	TotalPrice   string `db:"total_price" json:"total_price"`
	BreakdownJSON string `db:"breakdown_json" json:"-"`
}

// Record appends one trade attempt to the ledger.
func (l *Ledger) Record(attempt engine.TradeAttempt) error {
	total := ""
	breakdown := "{}"
	if attempt.Merchant.Price != nil {
		total = attempt.Merchant.Price.Total.String()
		raw, err := json.Marshal(attempt.Merchant.Price)
		if err != nil {
			return fmt.Errorf("marshal breakdown: %w", err)
		}
		breakdown = string(raw)
	}

	_, err := l.conn.Exec(`
		INSERT INTO trade_attempts (
			recorded_at, settlement, region, season, merchant_id, cargo,
			method, role, availability, skill, quantity_ep,
			supply, demand, eq_state, total_price, breakdown_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		attempt.Settlement,
		attempt.Region,
		attempt.Season.String(),
		attempt.Merchant.ID,
		attempt.Merchant.Cargo,
		string(attempt.Selection.Method),
		string(attempt.Merchant.Role),
		string(attempt.Merchant.Availability),
		attempt.Merchant.Skill,
		attempt.Merchant.QuantityEP,
		attempt.Equilibrium.Supply,
		attempt.Equilibrium.Demand,
		string(attempt.Equilibrium.State),
		total,
		breakdown,
	)
	if err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

// Recent returns the latest ledger entries, newest first.
func (l *Ledger) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []Entry
	err := l.conn.Select(&entries, `
		SELECT * FROM trade_attempts ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query ledger: %w", err)
	}
	return entries, nil
}

// BySettlement returns entries for one settlement and season, newest first.
func (l *Ledger) BySettlement(name string, season string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []Entry
	err := l.conn.Select(&entries, `
		SELECT * FROM trade_attempts
		WHERE settlement = ? AND season = ?
		ORDER BY id DESC LIMIT ?`, name, season, limit)
	if err != nil {
		return nil, fmt.Errorf("query ledger: %w", err)
	}
	return entries, nil
}
