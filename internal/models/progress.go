package models

import "time"

// Progress is a user's state on one video of a course. There is at most one
// record per (user, course, video).
type Progress struct {
	ID              string    `json:"id" bson:"_id"`
	UserID          string    `json:"user_id" bson:"user_id"`
	CourseID        string    `json:"course_id" bson:"course_id"`
	VideoID         string    `json:"video_id" bson:"video_id"`
	Completed       bool      `json:"completed" bson:"completed"`
	ProgressPercent int       `json:"progress_percent" bson:"progress_percent"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}

// ProgressRequest is the body of POST /progress.
type ProgressRequest struct {
	CourseID        string `json:"course_id" validate:"required"`
	VideoID         string `json:"video_id" validate:"required"`
	Completed       bool   `json:"completed"`
	ProgressPercent int    `json:"progress_percent" validate:"min=0,max=100"`
}
