package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/logx"
)

// EstimateHandler handles HTTP requests for delivery estimates.
type EstimateHandler struct {
	usecase   estimateUsecase
	snapshots snapshotReader
	logger    logx.Logger
}

// NewEstimateHandler creates a new EstimateHandler. snapshots may be nil when no store is configured.
func NewEstimateHandler(logger logx.Logger, uc estimateUsecase, snapshots snapshotReader) *EstimateHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &EstimateHandler{usecase: uc, snapshots: snapshots, logger: logger}
}

// Create handles POST /delivery-estimate.
// @Summary Estimate a delivery
// @Description Computes preparation, cycling and total time plus the order price
// @Tags estimates
// @Accept json
// @Produce json
// @Param request body estimateRequest true "Estimate payload"
// @Success 200 {object} estimateResponse
// @Failure 400 {object} ErrorResponse "invalid input or no route"
// @Failure 404 {object} ErrorResponse "restaurant or menu item not found"
// @Failure 503 {object} ErrorResponse "routing service unavailable"
// @Router /delivery-estimate [post]
func (h *EstimateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	in, err := req.toModel()
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}

	est, err := h.usecase.Estimate(r.Context(), in)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, estimateToResponse(est))
}

// GetByOrderID handles GET /delivery-estimates/{order_id}.
// @Summary Stored estimate of a placed order
// @Tags estimates
// @Produce json
// @Param order_id path string true "Order ID"
// @Success 200 {object} snapshotResponse
// @Failure 404 {object} ErrorResponse "estimate not found"
// @Router /delivery-estimates/{order_id} [get]
func (h *EstimateHandler) GetByOrderID(w http.ResponseWriter, r *http.Request) {
	orderID := strings.TrimSpace(chi.URLParam(r, "order_id"))
	if orderID == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid order_id")
		return
	}
	if h.snapshots == nil {
		writeAppError(h.logger, w, r, fmt.Errorf("%w: estimate store is not configured", apperr.ErrUnavailable))
		return
	}

	snap, err := h.snapshots.GetByOrderID(r.Context(), orderID)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	if snap == nil {
		writeError(h.logger, w, r, http.StatusNotFound, "estimate not found")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, snapshotToResponse(*snap))
}
