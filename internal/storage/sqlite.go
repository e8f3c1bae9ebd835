package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"panel-rsvp/internal/models"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS rsvp_responses (
	id                TEXT PRIMARY KEY,
	name              TEXT NOT NULL,
	rank              TEXT NOT NULL DEFAULT '',
	appointment       TEXT NOT NULL,
	unit_organization TEXT NOT NULL,
	contact_number    TEXT NOT NULL,
	email             TEXT NOT NULL UNIQUE,
	attendance_status TEXT NOT NULL,
	created_at        TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS page_analytics (
	id         TEXT PRIMARY KEY,
	page_path  TEXT NOT NULL DEFAULT '',
	visitor_id TEXT NOT NULL DEFAULT '',
	user_agent TEXT NOT NULL DEFAULT '',
	referrer   TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);
`

// SQLite is a local record store for development and self-hosted
// deployments. Same contract as the hosted store: ids and timestamps
// are assigned here, email uniqueness is enforced by the schema.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// InsertRSVP persists one record, assigning id and created_at.
func (s *SQLite) InsertRSVP(ctx context.Context, rec models.RSVPRecord) (models.RSVPRecord, error) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rsvp_responses
			(id, name, rank, appointment, unit_organization, contact_number, email, attendance_status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Name, rec.Rank, rec.Appointment, rec.UnitOrganization,
		rec.ContactNumber, rec.Email, string(rec.AttendanceStatus), rec.CreatedAt,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return models.RSVPRecord{}, ErrDuplicateEmail
		}
		return models.RSVPRecord{}, fmt.Errorf("failed to insert rsvp: %w", err)
	}

	return rec, nil
}

// ListRSVPs returns every record, newest first.
func (s *SQLite) ListRSVPs(ctx context.Context) ([]models.RSVPRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, rank, appointment, unit_organization, contact_number, email, attendance_status, created_at
		 FROM rsvp_responses
		 ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query rsvps: %w", err)
	}
	defer rows.Close()

	var recs []models.RSVPRecord
	for rows.Next() {
		var rec models.RSVPRecord
		var status string
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Rank, &rec.Appointment, &rec.UnitOrganization,
			&rec.ContactNumber, &rec.Email, &status, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rsvp: %w", err)
		}
		rec.AttendanceStatus = models.AttendanceStatus(status)
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rsvps: %w", err)
	}
	return recs, nil
}

// InsertVisit appends one page-view event.
func (s *SQLite) InsertVisit(ctx context.Context, visit models.PageVisit) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO page_analytics (id, page_path, visitor_id, user_agent, referrer, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), visit.PagePath, visit.VisitorID, visit.UserAgent, visit.Referrer, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert visit: %w", err)
	}
	return nil
}

// ListVisits returns all page-view events.
func (s *SQLite) ListVisits(ctx context.Context) ([]models.PageVisit, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT page_path, visitor_id, user_agent, referrer, created_at FROM page_analytics`)
	if err != nil {
		return nil, fmt.Errorf("failed to query visits: %w", err)
	}
	defer rows.Close()

	var visits []models.PageVisit
	for rows.Next() {
		var v models.PageVisit
		if err := rows.Scan(&v.PagePath, &v.VisitorID, &v.UserAgent, &v.Referrer, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read visits: %w", err)
	}
	return visits, nil
}
