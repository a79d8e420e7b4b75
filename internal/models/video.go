package models

import "time"

// Lesson types.
const (
	VideoTypeVideo = "video"
	VideoTypeQuiz  = "quiz"
)

// Video is one lesson of a course curriculum, ordered by Order.
type Video struct {
	ID              string    `json:"id" bson:"_id"`
	CourseID        string    `json:"course_id" bson:"course_id"`
	Title           string    `json:"title" bson:"title"`
	Description     *string   `json:"description" bson:"description,omitempty"`
	VideoURL        string    `json:"video_url" bson:"video_url"`
	DurationMinutes int       `json:"duration_minutes" bson:"duration_minutes"`
	Order           int       `json:"order" bson:"order"`
	IsPreview       bool      `json:"is_preview" bson:"is_preview"`
	Type            string    `json:"type" bson:"type"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}

// VideoRequest is the body of video create and update.
type VideoRequest struct {
	CourseID        string  `json:"course_id" validate:"required"`
	Title           string  `json:"title" validate:"required"`
	Description     *string `json:"description"`
	VideoURL        string  `json:"video_url" validate:"required"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,min=0"`
	Order           *int    `json:"order" validate:"omitempty,min=0"`
	IsPreview       *bool   `json:"is_preview"`
	Type            *string `json:"type" validate:"omitempty,oneof=video quiz"`
}

// Apply writes the request onto v, filling defaults for omitted fields.
func (r VideoRequest) Apply(v *Video) {
	v.CourseID = r.CourseID
	v.Title = r.Title
	v.Description = r.Description
	v.VideoURL = r.VideoURL
	v.DurationMinutes = valueOr(r.DurationMinutes, 0)
	v.Order = valueOr(r.Order, 0)
	v.IsPreview = valueOr(r.IsPreview, false)
	v.Type = valueOr(r.Type, VideoTypeVideo)
}
