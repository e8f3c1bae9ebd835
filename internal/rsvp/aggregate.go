package rsvp

import (
	"context"
	"fmt"
	"time"

	"panel-rsvp/internal/models"
)

// Dates group day/month/year without zero padding, matching how the
// dashboard has always displayed them.
const dateLayout = "2/1/2006"

// Snapshot is the full dashboard payload.
type Snapshot struct {
	Summary         Counts            `json:"summary"`
	PageVisits      PageVisitStats    `json:"pageVisits"`
	ResponsesByDate map[string]int    `json:"responsesByDate"`
	RecentResponses []ResponseSummary `json:"recentResponses"`
	LastUpdated     time.Time         `json:"lastUpdated"`
}

// PageVisitStats summarizes the page-view log. UniqueVisitors counts
// distinct visitor ids, which only approximates distinct humans.
type PageVisitStats struct {
	TotalVisits    int            `json:"totalVisits"`
	UniqueVisitors int            `json:"uniqueVisitors"`
	PageViews      map[string]int `json:"pageViews"`
}

// ResponseSummary is the display-safe subset of a record shown on the
// dashboard; email and contact number are deliberately excluded.
type ResponseSummary struct {
	ID               string                  `json:"id"`
	Name             string                  `json:"name"`
	Appointment      string                  `json:"appointment"`
	UnitOrganization string                  `json:"unit_organization"`
	Status           models.AttendanceStatus `json:"status"`
	CreatedAt        time.Time               `json:"created_at"`
}

// Summarize computes the dashboard snapshot from the full record and
// visit sets. A visit-fetch failure zeroes the pageVisits section
// instead of failing the snapshot; an RSVP-fetch failure fails the
// whole call.
func (s *Service) Summarize(ctx context.Context) (Snapshot, error) {
	recs, err := s.rsvps.ListRSVPs(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to fetch rsvps: %w", err)
	}

	byDate := make(map[string]int)
	recent := make([]ResponseSummary, 0, len(recs))
	for _, rec := range recs {
		byDate[rec.CreatedAt.Format(dateLayout)]++
		recent = append(recent, ResponseSummary{
			ID:               rec.ID,
			Name:             rec.Name,
			Appointment:      rec.Appointment,
			UnitOrganization: rec.UnitOrganization,
			Status:           rec.AttendanceStatus,
			CreatedAt:        rec.CreatedAt,
		})
	}

	return Snapshot{
		Summary:         countByStatus(recs),
		PageVisits:      s.visitStats(ctx),
		ResponsesByDate: byDate,
		RecentResponses: recent,
		LastUpdated:     time.Now().UTC(),
	}, nil
}

func (s *Service) visitStats(ctx context.Context) PageVisitStats {
	stats := PageVisitStats{PageViews: make(map[string]int)}

	visits, err := s.visits.ListVisits(ctx)
	if err != nil {
		// Analytics must never block the RSVP summary.
		s.log.Warn().Err(err).Msg("visit fetch failed, zeroing page stats")
		return stats
	}

	stats.TotalVisits = len(visits)
	seen := make(map[string]struct{})
	for _, v := range visits {
		seen[v.VisitorID] = struct{}{}
		page := v.PagePath
		if page == "" {
			page = "/"
		}
		stats.PageViews[page]++
	}
	stats.UniqueVisitors = len(seen)

	return stats
}
