package models

import "time"

// AttendanceStatus represents the attendance confirmation status
type AttendanceStatus string

const (
	StatusAttending AttendanceStatus = "attending"
	StatusTentative AttendanceStatus = "tentative"
	StatusUnable    AttendanceStatus = "unable"

	// StatusNotAttending is accepted on the form but never persisted;
	// it is mapped to StatusUnable before storage.
	StatusNotAttending AttendanceStatus = "not_attending"
)

// Sentinel values substituted for optional fields left blank by the submitter.
const (
	DefaultAppointment   = "Not Specified"
	DefaultContactNumber = "Not Provided"
)

// RSVPRecord represents one persisted RSVP response
type RSVPRecord struct {
	ID               string           `json:"id,omitempty"`
	Name             string           `json:"name"`
	Rank             string           `json:"rank,omitempty"`
	Appointment      string           `json:"appointment"`
	UnitOrganization string           `json:"unit_organization"`
	ContactNumber    string           `json:"contact_number"`
	Email            string           `json:"email"`
	AttendanceStatus AttendanceStatus `json:"attendance_status"`
	CreatedAt        time.Time        `json:"created_at,omitempty"`
}

// PageVisit represents one page-view event
type PageVisit struct {
	PagePath  string    `json:"page_path"`
	VisitorID string    `json:"visitor_id"`
	UserAgent string    `json:"user_agent"`
	Referrer  string    `json:"referrer"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
