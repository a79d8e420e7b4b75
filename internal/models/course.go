package models

import "time"

// Defaults applied to new content when the request leaves a field out.
const (
	DefaultInstructor = "Firza Ilmi"
	DefaultLevel      = "beginner"
)

// Course is a catalog entry.
type Course struct {
	ID            string    `json:"id" bson:"_id"`
	Title         string    `json:"title" bson:"title"`
	Description   string    `json:"description" bson:"description"`
	Thumbnail     *string   `json:"thumbnail" bson:"thumbnail,omitempty"`
	Price         float64   `json:"price" bson:"price"`
	IsFree        bool      `json:"is_free" bson:"is_free"`
	Category      string    `json:"category" bson:"category"`
	Level         string    `json:"level" bson:"level"`
	DurationHours int       `json:"duration_hours" bson:"duration_hours"`
	Instructor    string    `json:"instructor" bson:"instructor"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

// CourseRequest is the body of course create and update. Pointer fields are
// optional and fall back to their defaults when absent.
type CourseRequest struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Thumbnail     *string  `json:"thumbnail"`
	Price         *float64 `json:"price" validate:"omitempty,min=0"`
	IsFree        *bool    `json:"is_free"`
	Category      string   `json:"category" validate:"required"`
	Level         *string  `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	DurationHours *int     `json:"duration_hours" validate:"omitempty,min=0"`
	Instructor    *string  `json:"instructor"`
}

// Apply writes the request onto c, filling defaults for omitted fields.
func (r CourseRequest) Apply(c *Course) {
	c.Title = r.Title
	c.Description = r.Description
	c.Thumbnail = r.Thumbnail
	c.Price = valueOr(r.Price, 0)
	c.IsFree = valueOr(r.IsFree, true)
	c.Category = r.Category
	c.Level = valueOr(r.Level, DefaultLevel)
	c.DurationHours = valueOr(r.DurationHours, 0)
	c.Instructor = valueOr(r.Instructor, DefaultInstructor)
}

// CourseFilter narrows the course list. Nil fields do not filter.
type CourseFilter struct {
	Category *string
	IsFree   *bool
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
