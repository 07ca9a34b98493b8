// Package db stores the ledger of licenses issued by the license server.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrMachineRequired = errors.New("machine is required")
	ErrNotFound        = errors.New("record not found")
)

// LicenseQueries provides machine-scoped ledger lookups.
type LicenseQueries struct {
	db *sql.DB
}

// NewLicenseQueries creates a new LicenseQueries instance.
func NewLicenseQueries(db *sql.DB) *LicenseQueries {
	return &LicenseQueries{db: db}
}

// GetLicensesByMachine returns all licenses issued to a specific machine.
func (q *LicenseQueries) GetLicensesByMachine(ctx context.Context, machine string) ([]License, error) {
	if machine == "" {
		return nil, ErrMachineRequired
	}

	rows, err := q.db.QueryContext(ctx, `
		SELECT id, machine, token, COALESCE(note, ''), expires_at, issued_at
		FROM licenses
		WHERE machine = ?
		ORDER BY issued_at DESC
	`, machine)
	if err != nil {
		return nil, fmt.Errorf("query licenses: %w", err)
	}
	defer rows.Close()

	var licenses []License
	for rows.Next() {
		var l License
		if err := rows.Scan(&l.ID, &l.Machine, &l.Token, &l.Note, &l.ExpiresAt, &l.IssuedAt); err != nil {
			return nil, fmt.Errorf("scan license: %w", err)
		}
		licenses = append(licenses, l)
	}
	return licenses, rows.Err()
}

// GetLicenseByToken returns the ledger row for a token, if this server issued it.
func (q *LicenseQueries) GetLicenseByToken(ctx context.Context, token string) (*License, error) {
	var l License
	err := q.db.QueryRowContext(ctx, `
		SELECT id, machine, token, COALESCE(note, ''), expires_at, issued_at
		FROM licenses
		WHERE token = ?
	`, token).Scan(&l.ID, &l.Machine, &l.Token, &l.Note, &l.ExpiresAt, &l.IssuedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query license: %w", err)
	}
	return &l, nil
}
