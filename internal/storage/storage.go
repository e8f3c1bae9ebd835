package storage

import (
	"context"
	"errors"

	"panel-rsvp/internal/models"
)

// ErrDuplicateEmail signals the store's email uniqueness constraint.
// It is the only store failure callers are allowed to distinguish;
// everything else is opaque.
var ErrDuplicateEmail = errors.New("an RSVP with this email already exists")

// RSVPStore persists RSVP responses. The store assigns id and created_at
// and enforces email uniqueness; records are never updated or deleted.
type RSVPStore interface {
	// InsertRSVP persists a normalized record and returns it with the
	// store-assigned id and timestamp. Returns ErrDuplicateEmail when the
	// email is already taken.
	InsertRSVP(ctx context.Context, rec models.RSVPRecord) (models.RSVPRecord, error)

	// ListRSVPs returns every record, newest first.
	ListRSVPs(ctx context.Context) ([]models.RSVPRecord, error)
}

// VisitStore persists page-view events. Append-only, no constraints.
type VisitStore interface {
	InsertVisit(ctx context.Context, visit models.PageVisit) error
	ListVisits(ctx context.Context) ([]models.PageVisit, error)
}
