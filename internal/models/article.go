package models

import "time"

// Article is a blog post addressed publicly by its slug.
type Article struct {
	ID        string    `json:"id" bson:"_id"`
	Slug      string    `json:"slug" bson:"slug"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	Excerpt   *string   `json:"excerpt" bson:"excerpt,omitempty"`
	Thumbnail *string   `json:"thumbnail" bson:"thumbnail,omitempty"`
	Category  string    `json:"category" bson:"category"`
	Tags      []string  `json:"tags" bson:"tags"`
	Author    string    `json:"author" bson:"author"`
	Views     int       `json:"views" bson:"views"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// ArticleRequest is the body of article create and update.
type ArticleRequest struct {
	Title     string   `json:"title" validate:"required"`
	Content   string   `json:"content" validate:"required"`
	Excerpt   *string  `json:"excerpt"`
	Thumbnail *string  `json:"thumbnail"`
	Category  string   `json:"category" validate:"required"`
	Tags      []string `json:"tags"`
	Author    *string  `json:"author"`
}

// Apply writes the request onto a, filling defaults for omitted fields. The
// slug is left alone.
func (r ArticleRequest) Apply(a *Article) {
	a.Title = r.Title
	a.Content = r.Content
	a.Excerpt = r.Excerpt
	a.Thumbnail = r.Thumbnail
	a.Category = r.Category
	a.Tags = r.Tags
	if a.Tags == nil {
		a.Tags = []string{}
	}
	a.Author = valueOr(r.Author, DefaultInstructor)
}

// ArticleFilter narrows the article list. Nil fields do not filter.
type ArticleFilter struct {
	Category *string
	Tag      *string
}
