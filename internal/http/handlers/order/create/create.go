// Package create implements POST /api/orders.
package create

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/mavecode/mavecode-api/internal/http/middlewarectx"
	"github.com/mavecode/mavecode-api/internal/http/response"
	"github.com/mavecode/mavecode-api/internal/lib/sl"
	"github.com/mavecode/mavecode-api/internal/lib/validate"
	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/services/order"
)

type Service interface {
	Create(ctx context.Context, userID string, req models.CreateOrderRequest) (*models.Order, error)
}

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validate.New(),
	}
}

// ServeHTTP godoc
// @Summary Place an order
// @Description Opens a pending order at the course's current price. Bank transfer methods get a virtual account number.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateOrderRequest true "Order"
// @Success 200 {object} models.Order
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Course not found"
// @Router /orders [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	caller, ok := middlewarectx.IdentityFrom(r.Context())
	if !ok {
		response.Fail(w, r, http.StatusUnauthorized, middlewarectx.DetailNotAuthenticated)
		return
	}

	var req models.CreateOrderRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.Invalid(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Invalid(w, r, err)
		return
	}

	res, err := h.service.Create(r.Context(), caller.SubjectID(), req)
	if err != nil {
		if errors.Is(err, order.ErrCourseNotFound) {
			response.Fail(w, r, http.StatusNotFound, "Course not found")
			return
		}
		log.Error("failed to create order", sl.Err(err))
		response.Internal(w, r, err)
		return
	}

	log.Info("order created",
		slog.String("order_id", res.ID),
		slog.String("user_id", res.UserID),
		slog.String("payment_method", res.PaymentMethod))
	render.JSON(w, r, res)
}
