package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	side TEXT NOT NULL,
	qty INTEGER NOT NULL,
	entry_price REAL NOT NULL,
	exit_price REAL,
	pnl REAL,
	opened_at DATETIME NOT NULL,
	closed_at DATETIME,
	strategy_id TEXT NOT NULL,
	candidate_ref TEXT NOT NULL,
	status TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS fills (
	trade_id TEXT NOT NULL,
	side TEXT NOT NULL,
	price REAL NOT NULL,
	qty INTEGER NOT NULL,
	timestamp DATETIME NOT NULL,
	FOREIGN KEY(trade_id) REFERENCES trades(trade_id)
);

CREATE TABLE IF NOT EXISTS daily_metrics (
	date TEXT NOT NULL,
	pnl REAL NOT NULL,
	trades INTEGER NOT NULL,
	r_multiple REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS incidents (
	created_at DATETIME NOT NULL,
	severity TEXT NOT NULL,
	message TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_closed_at ON trades(closed_at);
CREATE INDEX IF NOT EXISTS idx_fills_trade_id ON fills(trade_id);
`
