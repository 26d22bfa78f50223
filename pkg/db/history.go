package db

import (
	"database/sql"
	"fmt"
	"time"
)

// ExportRecord represents one profile file written during an update run.
type ExportRecord struct {
	ID         int64
	RunID      string
	Format     string
	FilePath   string
	Bytes      int64
	ExportedAt time.Time
}

// History manages export history operations.
type History struct {
	conn *Connection
}

// NewHistory creates a new History instance.
func NewHistory(conn *Connection) *History {
	return &History{conn: conn}
}

// RecordRun records all files written by a single update run.
// The records are inserted in one transaction together with the
// last_run_id metadata entry, so a partially recorded run never exists.
func (h *History) RecordRun(runID string, records []ExportRecord) error {
	insert := `
		INSERT INTO export_history (run_id, format, file_path, bytes)
		VALUES (?, ?, ?, ?)
	`
	metadata := `
		INSERT INTO export_metadata (key, value, updated_at)
		VALUES ('last_run_id', ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`

	err := h.conn.Transaction(func(tx *sql.Tx) error {
		for _, record := range records {
			if _, err := tx.Exec(insert, runID, record.Format, record.FilePath, record.Bytes); err != nil {
				return fmt.Errorf("failed to record %s export: %w", record.Format, err)
			}
		}
		if _, err := tx.Exec(metadata, runID); err != nil {
			return fmt.Errorf("failed to record run ID: %w", err)
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	return nil
}

// Recent retrieves the most recent export records, newest first.
func (h *History) Recent(limit int) ([]ExportRecord, error) {
	query := `
		SELECT id, run_id, format, file_path, bytes, exported_at
		FROM export_history
		ORDER BY exported_at DESC, id DESC
		LIMIT ?
	`

	rows, err := h.conn.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent exports: %w", err)
	}
	defer rows.Close()

	return scanExportRecords(rows)
}

// ByRun retrieves all export records for a specific run.
func (h *History) ByRun(runID string) ([]ExportRecord, error) {
	query := `
		SELECT id, run_id, format, file_path, bytes, exported_at
		FROM export_history
		WHERE run_id = ?
		ORDER BY id
	`

	rows, err := h.conn.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get exports by run: %w", err)
	}
	defer rows.Close()

	return scanExportRecords(rows)
}

func scanExportRecords(rows *sql.Rows) ([]ExportRecord, error) {
	var records []ExportRecord
	for rows.Next() {
		var record ExportRecord

		if err := rows.Scan(
			&record.ID,
			&record.RunID,
			&record.Format,
			&record.FilePath,
			&record.Bytes,
			&record.ExportedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan export record: %w", err)
		}

		records = append(records, record)
	}

	return records, nil
}

// Stats represents export statistics.
type Stats struct {
	TotalExports int
	TotalRuns    int
	ByFormat     map[string]int
	LastExport   sql.NullString
}

// GetStats retrieves export statistics.
func (h *History) GetStats() (*Stats, error) {
	stats := Stats{ByFormat: make(map[string]int)}

	// Get total export count
	err := h.conn.QueryRow(`SELECT COUNT(*) FROM export_history`).Scan(&stats.TotalExports)
	if err != nil {
		return nil, fmt.Errorf("failed to get export count: %w", err)
	}

	// Get distinct run count
	err = h.conn.QueryRow(`SELECT COUNT(DISTINCT run_id) FROM export_history`).Scan(&stats.TotalRuns)
	if err != nil {
		return nil, fmt.Errorf("failed to get run count: %w", err)
	}

	// Get per-format counts
	rows, err := h.conn.Query(`SELECT format, COUNT(*) FROM export_history GROUP BY format`)
	if err != nil {
		return nil, fmt.Errorf("failed to get format counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var format string
		var count int
		if err := rows.Scan(&format, &count); err != nil {
			return nil, fmt.Errorf("failed to scan format count: %w", err)
		}
		stats.ByFormat[format] = count
	}

	// Get last export time
	err = h.conn.QueryRow(`SELECT MAX(exported_at) FROM export_history`).Scan(&stats.LastExport)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get last export time: %w", err)
	}

	return &stats, nil
}

// GetMetadata retrieves a metadata value.
func (h *History) GetMetadata(key string) (string, error) {
	query := `SELECT value FROM export_metadata WHERE key = ?`

	var value string
	err := h.conn.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get metadata: %w", err)
	}

	return value, nil
}

// SetMetadata sets a metadata value.
func (h *History) SetMetadata(key, value string) error {
	query := `
		INSERT INTO export_metadata (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := h.conn.Exec(query, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata: %w", err)
	}

	return nil
}
