package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS budgets (
    month                INTEGER NOT NULL,
    year                 INTEGER NOT NULL,
    income               TEXT NOT NULL,
    additional_income    TEXT NOT NULL,
    expenses_json        TEXT NOT NULL,
    savings_json         TEXT NOT NULL,
    additional_json      TEXT NOT NULL,
    updated_at           TEXT NOT NULL,
    PRIMARY KEY (year, month)
);

CREATE TABLE IF NOT EXISTS debts (
    name                 TEXT PRIMARY KEY,
    balance              TEXT NOT NULL,
    interest_rate        TEXT NOT NULL,
    minimum_payment      TEXT NOT NULL,
    debt_type            TEXT,
    payoff_date          TEXT,
    updated_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS locked_cells (
    month_index          INTEGER NOT NULL,
    category             TEXT NOT NULL,
    PRIMARY KEY (month_index, category)
);

CREATE INDEX IF NOT EXISTS idx_budgets_year ON budgets(year);
`
