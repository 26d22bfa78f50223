// Package db provides SQLite database management for export history and metadata.
package db

// Schema defines the SQL statements to create database tables.
const Schema = `
-- Export history table
-- Tracks every profile file written by an update run
CREATE TABLE IF NOT EXISTS export_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL,              -- UUID of the update run
    format TEXT NOT NULL,              -- 'json', 'ini', 'csv', 'yaml' or 'text'
    file_path TEXT NOT NULL,           -- Path of the written file
    bytes INTEGER NOT NULL,            -- Size of the written file
    exported_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_export_history_run
    ON export_history(run_id);

CREATE INDEX IF NOT EXISTS idx_export_history_format
    ON export_history(format);

-- Export metadata table
-- Stores key-value metadata about export operations
CREATE TABLE IF NOT EXISTS export_metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// InitializeSchema initializes the database schema.
// It creates all tables if they don't exist.
func InitializeSchema(conn *Connection) error {
	if _, err := conn.Exec(Schema); err != nil {
		return err
	}
	return nil
}
