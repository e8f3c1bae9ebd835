// Package analytics records page-view events. Writes are best-effort:
// a failure is logged for operators and otherwise discarded, so the
// page being viewed never degrades because of analytics.
package analytics

import (
	"context"
	"os"

	"panel-rsvp/internal/models"
	"panel-rsvp/internal/storage"

	"github.com/rs/zerolog"
)

// Fallbacks recorded when the browser sends no header.
const (
	UnknownUserAgent = "Unknown"
	DirectReferrer   = "Direct"
)

type Logger struct {
	visits storage.VisitStore
	log    zerolog.Logger
}

// NewLogger creates a visit logger backed by the given store.
func NewLogger(visits storage.VisitStore) *Logger {
	return &Logger{
		visits: visits,
		log:    zerolog.New(os.Stdout).With().Timestamp().Str("component", "analytics").Logger(),
	}
}

// LogVisit records one page view. Failure detail stays server-side; the
// returned error carries no store internals and callers are free to
// ignore it.
func (l *Logger) LogVisit(ctx context.Context, pagePath, visitorID, userAgent, referrer string) error {
	if userAgent == "" {
		userAgent = UnknownUserAgent
	}
	if referrer == "" {
		referrer = DirectReferrer
	}

	err := l.visits.InsertVisit(ctx, models.PageVisit{
		PagePath:  pagePath,
		VisitorID: visitorID,
		UserAgent: userAgent,
		Referrer:  referrer,
	})
	if err != nil {
		l.log.Error().Err(err).Str("page_path", pagePath).Msg("failed to record visit")
		return err
	}
	return nil
}
