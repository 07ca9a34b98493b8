package db

import (
	"context"
	"time"
)

// License records one issued token.
type License struct {
	ID        string
	Machine   string
	Token     string
	Note      string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// CreateLicense inserts a new ledger row.
func (d *Database) CreateLicense(ctx context.Context, l License) error {
	_, err := d.DB.ExecContext(ctx, `
		INSERT INTO licenses (
			id, machine, token, note, expires_at, issued_at
		) VALUES (?, ?, ?, ?, ?, COALESCE(?, CURRENT_TIMESTAMP))
	`,
		l.ID, l.Machine, l.Token, l.Note, l.ExpiresAt, l.IssuedAt,
	)
	return err
}

// ListRecentLicenses returns the newest ledger rows first.
func (d *Database) ListRecentLicenses(ctx context.Context, limit int) ([]License, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, machine, token, COALESCE(note, ''), expires_at, issued_at
		FROM licenses
		ORDER BY issued_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []License
	for rows.Next() {
		var l License
		if err := rows.Scan(&l.ID, &l.Machine, &l.Token, &l.Note, &l.ExpiresAt, &l.IssuedAt); err != nil {
			return nil, err
		}
		res = append(res, l)
	}
	return res, rows.Err()
}

// CountLicenses returns the number of ledger rows.
func (d *Database) CountLicenses(ctx context.Context) (int, error) {
	var n int
	err := d.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM licenses`).Scan(&n)
	return n, err
}
