package analytics_test

import (
	"context"
	"errors"
	"testing"

	"panel-rsvp/internal/analytics"
	"panel-rsvp/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVisitStore struct {
	visits    []models.PageVisit
	insertErr error
}

func (s *stubVisitStore) InsertVisit(_ context.Context, v models.PageVisit) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.visits = append(s.visits, v)
	return nil
}

func (s *stubVisitStore) ListVisits(context.Context) ([]models.PageVisit, error) {
	return s.visits, nil
}

func TestLogVisit(t *testing.T) {
	store := &stubVisitStore{}
	logger := analytics.NewLogger(store)

	err := logger.LogVisit(context.Background(), "/panelists", "v-1", "Mozilla/5.0", "https://example.com")

	require.NoError(t, err)
	require.Len(t, store.visits, 1)
	assert.Equal(t, "/panelists", store.visits[0].PagePath)
	assert.Equal(t, "Mozilla/5.0", store.visits[0].UserAgent)
}

func TestLogVisit_HeaderFallbacks(t *testing.T) {
	store := &stubVisitStore{}
	logger := analytics.NewLogger(store)

	err := logger.LogVisit(context.Background(), "/", "v-1", "", "")

	require.NoError(t, err)
	require.Len(t, store.visits, 1)
	assert.Equal(t, analytics.UnknownUserAgent, store.visits[0].UserAgent)
	assert.Equal(t, analytics.DirectReferrer, store.visits[0].Referrer)
}

func TestLogVisit_FailureCarriesNoStoreDetail(t *testing.T) {
	store := &stubVisitStore{insertErr: errors.New("pq: permission denied for table page_analytics")}
	logger := analytics.NewLogger(store)

	err := logger.LogVisit(context.Background(), "/", "v-1", "", "")

	assert.Error(t, err)
	assert.Empty(t, store.visits)
}
