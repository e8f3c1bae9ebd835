package rsvp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"panel-rsvp/internal/models"
	"panel-rsvp/internal/storage"

	"github.com/rs/zerolog"
)

// ValidationError carries every field violation found in a submission.
// No store interaction happens when it is returned.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "invalid submission: " + strings.Join(e.Errors, "; ")
}

// SubmitResult is what the caller gets back after a successful insert.
type SubmitResult struct {
	ID     string
	Name   string
	Status models.AttendanceStatus
}

// Service owns the RSVP intake and aggregation logic.
type Service struct {
	rsvps  storage.RSVPStore
	visits storage.VisitStore
	log    zerolog.Logger
}

// NewService creates an RSVP service backed by the given stores.
func NewService(rsvps storage.RSVPStore, visits storage.VisitStore) *Service {
	return &Service{
		rsvps:  rsvps,
		visits: visits,
		log:    zerolog.New(os.Stdout).With().Timestamp().Str("component", "rsvp").Logger(),
	}
}

// Submit validates a raw submission, normalizes it and makes a single
// insert attempt. Returns *ValidationError for malformed input and
// storage.ErrDuplicateEmail when the email is already registered; any
// other failure is opaque to the caller.
func (s *Service) Submit(ctx context.Context, raw any) (SubmitResult, error) {
	sub, ok := models.ResolveSubmission(raw)
	if !ok {
		return SubmitResult{}, &ValidationError{Errors: []string{"Invalid request data"}}
	}

	if errs := sub.Validate(); len(errs) > 0 {
		return SubmitResult{}, &ValidationError{Errors: errs}
	}

	rec, err := s.rsvps.InsertRSVP(ctx, sub.Record())
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return SubmitResult{}, err
		}
		s.log.Error().Err(err).Msg("rsvp insert failed")
		return SubmitResult{}, fmt.Errorf("failed to save rsvp: %w", err)
	}

	s.log.Info().
		Str("name", rec.Name).
		Str("appointment", rec.Appointment).
		Str("status", string(rec.AttendanceStatus)).
		Msg("rsvp submitted")

	return SubmitResult{ID: rec.ID, Name: rec.Name, Status: rec.AttendanceStatus}, nil
}

// Counts is the per-status breakdown of all responses. Records with an
// unrecognized status count toward Total only.
type Counts struct {
	Total     int `json:"total"`
	Attending int `json:"attending"`
	Tentative int `json:"tentative"`
	Unable    int `json:"unable"`
}

// Stats returns the response counts and the time of the most recent
// submission, or nil when there are none.
func (s *Service) Stats(ctx context.Context) (Counts, *time.Time, error) {
	recs, err := s.rsvps.ListRSVPs(ctx)
	if err != nil {
		return Counts{}, nil, fmt.Errorf("failed to fetch rsvps: %w", err)
	}

	counts := countByStatus(recs)

	var last *time.Time
	if len(recs) > 0 {
		last = &recs[0].CreatedAt
	}
	return counts, last, nil
}

func countByStatus(recs []models.RSVPRecord) Counts {
	counts := Counts{Total: len(recs)}
	for _, rec := range recs {
		switch rec.AttendanceStatus {
		case models.StatusAttending:
			counts.Attending++
		case models.StatusTentative:
			counts.Tentative++
		case models.StatusUnable:
			counts.Unable++
		}
	}
	return counts
}
