package models

// DefaultFAQCategory is used when a FAQ is created without a category.
const DefaultFAQCategory = "general"

// FAQ is a question shown on the help page, ordered by Order.
type FAQ struct {
	ID       string `json:"id" bson:"_id"`
	Question string `json:"question" bson:"question"`
	Answer   string `json:"answer" bson:"answer"`
	Category string `json:"category" bson:"category"`
	Order    int    `json:"order" bson:"order"`
}

// FAQRequest is the body of FAQ create and update.
type FAQRequest struct {
	Question string  `json:"question" validate:"required"`
	Answer   string  `json:"answer" validate:"required"`
	Category *string `json:"category"`
	Order    *int    `json:"order" validate:"omitempty,min=0"`
}

// Apply writes the request onto f, filling defaults for omitted fields.
func (r FAQRequest) Apply(f *FAQ) {
	f.Question = r.Question
	f.Answer = r.Answer
	f.Category = valueOr(r.Category, DefaultFAQCategory)
	f.Order = valueOr(r.Order, 0)
}
