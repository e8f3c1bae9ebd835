package rsvp_test

import (
	"context"
	"fmt"
	"time"

	"panel-rsvp/internal/models"
	"panel-rsvp/internal/storage"

	"github.com/google/uuid"
)

// fakeStore mimics the record store: it assigns ids and timestamps,
// enforces email uniqueness and lists newest first.
type fakeStore struct {
	recs   []models.RSVPRecord
	visits []models.PageVisit

	insertErr    error
	listErr      error
	visitListErr error

	insertCalls int
	now         time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{now: time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)}
}

func (f *fakeStore) InsertRSVP(_ context.Context, rec models.RSVPRecord) (models.RSVPRecord, error) {
	f.insertCalls++
	if f.insertErr != nil {
		return models.RSVPRecord{}, f.insertErr
	}
	for _, existing := range f.recs {
		if existing.Email == rec.Email {
			return models.RSVPRecord{}, storage.ErrDuplicateEmail
		}
	}
	rec.ID = uuid.NewString()
	rec.CreatedAt = f.now
	f.now = f.now.Add(time.Minute)
	f.recs = append(f.recs, rec)
	return rec, nil
}

func (f *fakeStore) ListRSVPs(context.Context) ([]models.RSVPRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.RSVPRecord, 0, len(f.recs))
	for i := len(f.recs) - 1; i >= 0; i-- {
		out = append(out, f.recs[i])
	}
	return out, nil
}

func (f *fakeStore) InsertVisit(_ context.Context, visit models.PageVisit) error {
	f.visits = append(f.visits, visit)
	return nil
}

func (f *fakeStore) ListVisits(context.Context) ([]models.PageVisit, error) {
	if f.visitListErr != nil {
		return nil, f.visitListErr
	}
	return f.visits, nil
}

var errStoreDown = fmt.Errorf("store unreachable")
