package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"panel-rsvp/internal/models"

	"github.com/rs/zerolog"
)

const (
	rsvpTable  = "rsvp_responses"
	visitTable = "page_analytics"

	// Postgres unique_violation, surfaced verbatim by PostgREST.
	pgUniqueViolation = "23505"

	// PostgREST caps result sets; mirror a generous explicit range for
	// the analytics scan.
	visitRange = "0-99999"
)

// Supabase is a client for a Supabase PostgREST endpoint. Construct one
// per access role: the anon key for the analytics write path, the
// service-role key for RSVP and admin reads.
type Supabase struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     zerolog.Logger
}

// NewSupabase creates a client for the given project URL and API key.
func NewSupabase(baseURL, apiKey string) *Supabase {
	return &Supabase{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
		log:     zerolog.New(os.Stdout).With().Timestamp().Str("component", "supabase").Logger(),
	}
}

// supabaseError is the PostgREST error body.
type supabaseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
}

// rsvpRow is the insert payload: id and created_at are assigned by the
// database and must not be sent.
type rsvpRow struct {
	Name             string                  `json:"name"`
	Rank             string                  `json:"rank,omitempty"`
	Appointment      string                  `json:"appointment"`
	UnitOrganization string                  `json:"unit_organization"`
	ContactNumber    string                  `json:"contact_number"`
	Email            string                  `json:"email"`
	AttendanceStatus models.AttendanceStatus `json:"attendance_status"`
}

type visitRow struct {
	PagePath  string `json:"page_path"`
	VisitorID string `json:"visitor_id"`
	UserAgent string `json:"user_agent"`
	Referrer  string `json:"referrer"`
}

// InsertRSVP inserts one record and returns the stored row, including
// the id and created_at assigned by the database.
func (s *Supabase) InsertRSVP(ctx context.Context, rec models.RSVPRecord) (models.RSVPRecord, error) {
	row := rsvpRow{
		Name:             rec.Name,
		Rank:             rec.Rank,
		Appointment:      rec.Appointment,
		UnitOrganization: rec.UnitOrganization,
		ContactNumber:    rec.ContactNumber,
		Email:            rec.Email,
		AttendanceStatus: rec.AttendanceStatus,
	}
	body, err := s.insert(ctx, rsvpTable, row, true)
	if err != nil {
		return models.RSVPRecord{}, err
	}

	var rows []models.RSVPRecord
	if err := json.Unmarshal(body, &rows); err != nil {
		return models.RSVPRecord{}, fmt.Errorf("failed to decode inserted row: %w", err)
	}
	if len(rows) == 0 {
		return models.RSVPRecord{}, fmt.Errorf("insert returned no rows")
	}
	return rows[0], nil
}

// ListRSVPs returns all records ordered newest first. The ordering is
// requested from the database so every dashboard run sees the same
// canonical history.
func (s *Supabase) ListRSVPs(ctx context.Context) ([]models.RSVPRecord, error) {
	body, err := s.selectAll(ctx, rsvpTable, "order=created_at.desc", "")
	if err != nil {
		return nil, err
	}

	var rows []models.RSVPRecord
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode rows: %w", err)
	}
	return rows, nil
}

// InsertVisit appends one page-view event.
func (s *Supabase) InsertVisit(ctx context.Context, visit models.PageVisit) error {
	row := visitRow{
		PagePath:  visit.PagePath,
		VisitorID: visit.VisitorID,
		UserAgent: visit.UserAgent,
		Referrer:  visit.Referrer,
	}
	_, err := s.insert(ctx, visitTable, row, false)
	return err
}

// ListVisits returns all page-view events.
func (s *Supabase) ListVisits(ctx context.Context) ([]models.PageVisit, error) {
	body, err := s.selectAll(ctx, visitTable, "", visitRange)
	if err != nil {
		return nil, err
	}

	var rows []models.PageVisit
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode rows: %w", err)
	}
	return rows, nil
}

func (s *Supabase) insert(ctx context.Context, table string, row any, wantRow bool) ([]byte, error) {
	payload, err := json.Marshal([]any{row})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal row: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tableURL(table), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	s.setHeaders(req)
	if wantRow {
		req.Header.Set("Prefer", "return=representation")
	} else {
		req.Header.Set("Prefer", "return=minimal")
	}

	return s.do(req)
}

func (s *Supabase) selectAll(ctx context.Context, table, order, rng string) ([]byte, error) {
	url := s.tableURL(table) + "?select=*"
	if order != "" {
		url += "&" + order
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	s.setHeaders(req)
	if rng != "" {
		req.Header.Set("Range", rng)
	}

	return s.do(req)
}

func (s *Supabase) do(req *http.Request) ([]byte, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var sbErr supabaseError
		if json.Unmarshal(body, &sbErr) == nil && sbErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateEmail
		}
		s.log.Error().
			Int("status", resp.StatusCode).
			Str("path", req.URL.Path).
			Str("code", sbErr.Code).
			Str("message", sbErr.Message).
			Msg("supabase request rejected")
		return nil, fmt.Errorf("supabase returned status %d", resp.StatusCode)
	}

	return body, nil
}

func (s *Supabase) setHeaders(req *http.Request) {
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")
}

func (s *Supabase) tableURL(table string) string {
	return fmt.Sprintf("%s/rest/v1/%s", s.baseURL, table)
}
