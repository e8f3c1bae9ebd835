package models

import (
	"regexp"
	"strings"
)

// emailPattern is deliberately permissive: local@domain.tld shape only,
// no deliverability checks.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Submission is the canonical shape of an RSVP form submission after
// alias resolution. The public form and the storage schema use different
// field names; both are accepted and resolved here, first populated
// alias wins, before any validation runs.
type Submission struct {
	Name             string
	Rank             string
	Appointment      string
	UnitOrganization string
	ContactNumber    string
	Email            string
	Status           string
}

// ResolveSubmission maps a decoded JSON body to the canonical Submission
// shape. Returns false when the body is not a JSON object.
func ResolveSubmission(raw any) (Submission, bool) {
	body, ok := raw.(map[string]any)
	if !ok || body == nil {
		return Submission{}, false
	}

	return Submission{
		Name:             stringField(body, "fullName", "name"),
		Rank:             stringField(body, "rank"),
		Appointment:      stringField(body, "designation", "appointment"),
		UnitOrganization: stringField(body, "organisation", "unit_organization"),
		ContactNumber:    stringField(body, "mobile", "contact_number"),
		Email:            stringField(body, "email"),
		Status:           stringField(body, "rsvpStatus", "attendance_status"),
	}, true
}

// Validate checks a resolved submission and collects every violation;
// it does not stop at the first failure.
func (s Submission) Validate() []string {
	var errs []string

	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, "Name is required")
	}
	if strings.TrimSpace(s.UnitOrganization) == "" {
		errs = append(errs, "Organisation is required")
	}
	if strings.TrimSpace(s.Email) == "" {
		errs = append(errs, "Email is required")
	} else if !emailPattern.MatchString(s.Email) {
		errs = append(errs, "Invalid email format")
	}
	if !validStatus(s.Status) {
		errs = append(errs, "Valid attendance status is required")
	}

	return errs
}

// Record builds the normalized record for storage: fields trimmed,
// sentinel defaults applied, email canonicalized, and the form-only
// "not_attending" value mapped to "unable". Call only on a submission
// that passed Validate.
func (s Submission) Record() RSVPRecord {
	appointment := strings.TrimSpace(s.Appointment)
	if appointment == "" {
		appointment = DefaultAppointment
	}
	contact := strings.TrimSpace(s.ContactNumber)
	if contact == "" {
		contact = DefaultContactNumber
	}

	status := AttendanceStatus(s.Status)
	if status == StatusNotAttending {
		status = StatusUnable
	}

	return RSVPRecord{
		Name:             strings.TrimSpace(s.Name),
		Rank:             strings.TrimSpace(s.Rank),
		Appointment:      appointment,
		UnitOrganization: strings.TrimSpace(s.UnitOrganization),
		ContactNumber:    contact,
		Email:            NormalizeEmail(s.Email),
		AttendanceStatus: status,
	}
}

// NormalizeEmail trims and lower-cases an email address. Idempotent.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validStatus(status string) bool {
	switch AttendanceStatus(status) {
	case StatusAttending, StatusTentative, StatusUnable, StatusNotAttending:
		return true
	}
	return false
}

// stringField returns the first alias present as a non-empty string.
// Values of any other type are treated as absent.
func stringField(body map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := body[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}
