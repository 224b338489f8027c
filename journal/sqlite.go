package journal

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/shumcap/desk/metrics"
)

// SQLite is the default journal, one file per desk.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create journal schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (j *SQLite) InsertTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, symbol, side, qty, entry_price, exit_price, pnl, opened_at, closed_at, strategy_id, candidate_ref, status)
		VALUES (?, ?, ?, ?, ?, NULL, NULL, ?, NULL, ?, ?, ?)`,
		t.ID, t.Symbol, t.Side, t.Qty, t.EntryPrice,
		t.OpenedAt, t.StrategyID, t.CandidateRef, t.Status,
	)
	return err
}

func (j *SQLite) CloseTrade(id string, exitPrice, pnl float64, closedAt time.Time) error {
	_, err := j.db.Exec(`
		UPDATE trades
		SET exit_price = ?, pnl = ?, closed_at = ?, status = 'CLOSED'
		WHERE trade_id = ?`,
		exitPrice, pnl, closedAt, id,
	)
	return err
}

func (j *SQLite) InsertFill(f FillRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO fills (trade_id, side, price, qty, timestamp)
		VALUES (?, ?, ?, ?, ?)`,
		f.TradeID, f.Side, f.Price, f.Qty, f.Timestamp,
	)
	return err
}

func (j *SQLite) InsertMetric(m metrics.Summary) error {
	_, err := j.db.Exec(`
		INSERT INTO daily_metrics (date, pnl, trades, r_multiple)
		VALUES (?, ?, ?, ?)`,
		m.Date, m.PnL, m.Trades, m.RMultiple,
	)
	return err
}

func (j *SQLite) InsertIncident(in Incident) error {
	created := in.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err := j.db.Exec(`
		INSERT INTO incidents (created_at, severity, message)
		VALUES (?, ?, ?)`,
		created, in.Severity, in.Message,
	)
	return err
}

// FetchSessionState derives the session's opening numbers from trade
// history: equity is the base stake plus all realized P&L, daily P&L
// sums trades closed today, and the loss streak counts back from the
// most recent closed trades until a winner breaks it.
func (j *SQLite) FetchSessionState(baseEquity float64, today time.Time) (SessionState, error) {
	st := SessionState{}

	var totalPnL sql.NullFloat64
	if err := j.db.QueryRow(`SELECT SUM(pnl) FROM trades`).Scan(&totalPnL); err != nil {
		return st, fmt.Errorf("total pnl: %w", err)
	}
	st.Equity = baseEquity + totalPnL.Float64

	var dailyPnL sql.NullFloat64
	err := j.db.QueryRow(
		`SELECT SUM(pnl) FROM trades WHERE date(closed_at) = ?`,
		today.Format("2006-01-02"),
	).Scan(&dailyPnL)
	if err != nil {
		return st, fmt.Errorf("daily pnl: %w", err)
	}
	st.DailyPnL = dailyPnL.Float64

	rows, err := j.db.Query(
		`SELECT pnl FROM trades WHERE pnl IS NOT NULL ORDER BY closed_at DESC LIMIT 5`)
	if err != nil {
		return st, fmt.Errorf("loss streak: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var pnl float64
		if err := rows.Scan(&pnl); err != nil {
			return st, fmt.Errorf("loss streak: %w", err)
		}
		if pnl >= 0 {
			break
		}
		st.ConsecutiveLosses++
	}
	if err := rows.Err(); err != nil {
		return st, fmt.Errorf("loss streak: %w", err)
	}
	return st, nil
}

// ListTrades returns the most recent trades, newest first.
func (j *SQLite) ListTrades(limit int) ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT trade_id, symbol, side, qty, entry_price, exit_price, pnl, opened_at, closed_at, strategy_id, candidate_ref, status
		FROM trades ORDER BY opened_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list trades: %w", err)
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		var (
			t         TradeRecord
			exitPrice sql.NullFloat64
			pnl       sql.NullFloat64
			closedAt  sql.NullTime
		)
		err := rows.Scan(&t.ID, &t.Symbol, &t.Side, &t.Qty, &t.EntryPrice,
			&exitPrice, &pnl, &t.OpenedAt, &closedAt, &t.StrategyID, &t.CandidateRef, &t.Status)
		if err != nil {
			return nil, fmt.Errorf("list trades: %w", err)
		}
		t.ExitPrice = exitPrice.Float64
		t.PnL = pnl.Float64
		t.ClosedAt = closedAt.Time
		out = append(out, t)
	}
	return out, rows.Err()
}

// ListMetrics returns the most recent daily summaries, newest first.
func (j *SQLite) ListMetrics(limit int) ([]metrics.Summary, error) {
	rows, err := j.db.Query(`
		SELECT date, pnl, trades, r_multiple
		FROM daily_metrics ORDER BY date DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}
	defer rows.Close()

	var out []metrics.Summary
	for rows.Next() {
		var m metrics.Summary
		if err := rows.Scan(&m.Date, &m.PnL, &m.Trades, &m.RMultiple); err != nil {
			return nil, fmt.Errorf("list metrics: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
