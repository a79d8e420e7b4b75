// Package pay implements POST /api/orders/{id}/pay.
package pay

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mavecode/mavecode-api/internal/http/middlewarectx"
	"github.com/mavecode/mavecode-api/internal/http/response"
	"github.com/mavecode/mavecode-api/internal/lib/sl"
	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/services/order"
)

type Service interface {
	Pay(ctx context.Context, id, userID string) (*models.Order, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

// Response confirms the simulated payment.
type Response struct {
	Message string `json:"message" example:"Payment successful"`
	Status  string `json:"status" example:"paid"`
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Pay an order
// @Description Marks the caller's order paid and grants premium access.
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order id"
// @Success 200 {object} Response
// @Failure 404 {object} response.ErrorResponse "Order not found"
// @Router /orders/{id}/pay [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.pay"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	caller, ok := middlewarectx.IdentityFrom(r.Context())
	if !ok {
		response.Fail(w, r, http.StatusUnauthorized, middlewarectx.DetailNotAuthenticated)
		return
	}

	// Orders of other users are reported as missing.
	res, err := h.service.Pay(r.Context(), chi.URLParam(r, "id"), caller.SubjectID())
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			response.Fail(w, r, http.StatusNotFound, "Order not found")
			return
		}
		log.Error("failed to pay order", sl.Err(err))
		response.Internal(w, r, err)
		return
	}

	log.Info("order paid", slog.String("order_id", res.ID), slog.String("user_id", res.UserID))
	render.JSON(w, r, Response{Message: "Payment successful", Status: res.Status})
}
