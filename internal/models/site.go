package models

import "time"

// HeroContent is the landing page banner.
type HeroContent struct {
	Title           string  `json:"title" bson:"title" validate:"required"`
	Subtitle        string  `json:"subtitle" bson:"subtitle" validate:"required"`
	CTAText         string  `json:"cta_text" bson:"cta_text" validate:"required"`
	BackgroundImage *string `json:"background_image" bson:"background_image,omitempty"`
}

// ContactMessage is a message left through the contact form.
type ContactMessage struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Subject   string    `json:"subject" bson:"subject"`
	Message   string    `json:"message" bson:"message"`
	Read      bool      `json:"read" bson:"read"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// ContactRequest is the body of POST /contact.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Category is a static course category.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// SubscriptionPlan is a static pricing plan.
type SubscriptionPlan struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	PriceMonthly float64  `json:"price_monthly"`
	PriceYearly  float64  `json:"price_yearly"`
	Features     []string `json:"features"`
	IsPopular    bool     `json:"is_popular"`
}

// Counts are raw collection sizes.
type Counts struct {
	Courses  int64
	Users    int64
	Articles int64
}

// Stats is the public landing page counter block.
type Stats struct {
	Courses  int64 `json:"courses"`
	Students int64 `json:"students"`
	Articles int64 `json:"articles"`
	Mentors  int64 `json:"mentors"`
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message   string  `json:"message" validate:"required"`
	SessionID *string `json:"session_id"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}
