package models

import (
	"errors"
	"time"
)

// ErrInvalidTimestamp is returned when a datetime field cannot be parsed.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// LiveClass is a scheduled live session.
type LiveClass struct {
	ID                string    `json:"id" bson:"_id"`
	Title             string    `json:"title" bson:"title"`
	Description       *string   `json:"description" bson:"description,omitempty"`
	Instructor        string    `json:"instructor" bson:"instructor"`
	ScheduledAt       time.Time `json:"scheduled_at" bson:"scheduled_at"`
	DurationMinutes   int       `json:"duration_minutes" bson:"duration_minutes"`
	MeetingURL        *string   `json:"meeting_url" bson:"meeting_url,omitempty"`
	MaxParticipants   int       `json:"max_participants" bson:"max_participants"`
	ParticipantsCount int       `json:"participants_count" bson:"participants_count"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
}

// LiveClassRequest is the body of live class create and update.
type LiveClassRequest struct {
	Title           string  `json:"title" validate:"required"`
	Description     *string `json:"description"`
	Instructor      *string `json:"instructor"`
	ScheduledAt     string  `json:"scheduled_at" validate:"required"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,min=1"`
	MeetingURL      *string `json:"meeting_url"`
	MaxParticipants *int    `json:"max_participants" validate:"omitempty,min=1"`
}

// Apply writes the request onto l, filling defaults for omitted fields.
func (r LiveClassRequest) Apply(l *LiveClass) error {
	scheduledAt, err := ParseTimestamp(r.ScheduledAt)
	if err != nil {
		return err
	}
	l.Title = r.Title
	l.Description = r.Description
	l.Instructor = valueOr(r.Instructor, DefaultInstructor)
	l.ScheduledAt = scheduledAt
	l.DurationMinutes = valueOr(r.DurationMinutes, 60)
	l.MeetingURL = r.MeetingURL
	l.MaxParticipants = valueOr(r.MaxParticipants, 100)
	return nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseTimestamp accepts RFC 3339 and the zone-less forms sent by datetime-local
// inputs, which are read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidTimestamp
}
