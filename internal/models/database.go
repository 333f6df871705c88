package models

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	sqlitecloud "github.com/sqlitecloud/sqlitecloud-go"
)

// Database persists batch reports to SQLite Cloud so past runs can be listed
// without touching the sheet.
type Database struct {
	db *sqlitecloud.SQCloud
}

// RunRecord is one stored enrichment run.
type RunRecord struct {
	ID        int64       `json:"id"`
	CreatedAt string      `json:"created_at"`
	Report    BatchReport `json:"report"`
}

// NewDatabase connects to SQLite Cloud and ensures the run-history table exists.
func NewDatabase(connStr string) (*Database, error) {
	log.Printf("Connecting to SQLite Cloud database: %s", maskConnectionString(connStr))

	db, err := sqlitecloud.Connect(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite Cloud: %w", err)
	}

	database := &Database{db: db}
	if err := database.createTables(); err != nil {
		return nil, err
	}
	return database, nil
}

// maskConnectionString hides the API key in logs.
func maskConnectionString(connStr string) string {
	if strings.Contains(connStr, "apikey=") {
		parts := strings.Split(connStr, "apikey=")
		if len(parts) > 1 {
			return parts[0] + "apikey=***"
		}
	}
	return connStr
}

func (d *Database) createTables() error {
	sql := `CREATE TABLE IF NOT EXISTS enrichment_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		keyword TEXT NOT NULL,
		found INTEGER NOT NULL,
		processed INTEGER NOT NULL,
		skipped INTEGER NOT NULL,
		report_json TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`
	if err := d.db.Execute(sql); err != nil {
		return fmt.Errorf("failed to create enrichment_runs table: %w", err)
	}
	return nil
}

// StoreRun saves a finished batch report.
func (d *Database) StoreRun(report *BatchReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	sql := `INSERT INTO enrichment_runs (keyword, found, processed, skipped, report_json)
			VALUES (?, ?, ?, ?, ?)`

	return d.db.ExecuteArray(sql, []interface{}{
		report.Keyword,
		report.Found,
		report.Processed,
		len(report.Skipped),
		string(data),
	})
}

// ListRuns returns the most recent runs, newest first.
func (d *Database) ListRuns(limit int) ([]RunRecord, error) {
	sql := `SELECT id, created_at, report_json FROM enrichment_runs
			ORDER BY created_at DESC LIMIT ?`

	result, err := d.db.SelectArray(sql, []interface{}{limit})
	if err != nil {
		return nil, err
	}

	runs := make([]RunRecord, 0, result.GetNumberOfRows())
	for row := uint64(0); row < result.GetNumberOfRows(); row++ {
		idStr, err := result.GetStringValue(row, 0)
		if err != nil {
			return nil, err
		}
		id, _ := strconv.ParseInt(idStr, 10, 64)

		createdAt, err := result.GetStringValue(row, 1)
		if err != nil {
			return nil, err
		}

		reportJSON, err := result.GetStringValue(row, 2)
		if err != nil {
			return nil, err
		}
		var report BatchReport
		if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
			return nil, fmt.Errorf("failed to decode stored report %d: %w", id, err)
		}

		runs = append(runs, RunRecord{ID: id, CreatedAt: createdAt, Report: report})
	}
	return runs, nil
}

// Close closes the database connection.
func (d *Database) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
