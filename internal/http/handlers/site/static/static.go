// Package static serves the routes that never touch the store, so they keep
// answering in maintenance mode.
package static

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/mavecode/mavecode-api/internal/services/site"
)

// Version is reported by the root route.
const Version = "1.0"

// RootResponse is the body of GET /api/.
type RootResponse struct {
	Message string `json:"message" example:"Mavecode API v1.0"`
	Status  string `json:"status" example:"running"`
}

// Root godoc
// @Summary API banner
// @Tags Site
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func Root(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, RootResponse{Message: "Mavecode API v" + Version, Status: "running"})
}

// Categories godoc
// @Summary Course categories
// @Tags Site
// @Produce json
// @Success 200 {array} models.Category
// @Router /categories [get]
func Categories(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, site.Categories())
}

// Plans godoc
// @Summary Subscription plans
// @Tags Site
// @Produce json
// @Success 200 {array} models.SubscriptionPlan
// @Router /subscriptions [get]
func Plans(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, site.Plans())
}
