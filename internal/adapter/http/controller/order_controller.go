package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/api-sage/disbursement-processor/internal/adapter/http/models"
	"github.com/api-sage/disbursement-processor/internal/commons"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req models.CreateOrderRequest) (commons.Response[models.OrderResponse], error)
	GetOrdersByMerchant(ctx context.Context, merchantID string) (commons.Response[[]models.OrderResponse], error)
	GetOrdersByDateRange(ctx context.Context, req models.GetOrdersByDateRangeRequest) (commons.Response[[]models.OrderResponse], error)
	UpdateOrderStatus(ctx context.Context, req models.UpdateOrderStatusRequest) (commons.Response[models.OrderResponse], error)
}

type OrderController struct {
	service OrderService
}

func NewOrderController(service OrderService) *OrderController {
	return &OrderController{service: service}
}

func (c *OrderController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	orders := http.HandlerFunc(c.handleOrders)
	status := http.HandlerFunc(c.updateOrderStatus)
	if authMiddleware != nil {
		orders = authMiddleware(orders).ServeHTTP
		status = authMiddleware(status).ServeHTTP
	}
	mux.Handle("/orders", http.HandlerFunc(orders))
	mux.Handle("/orders/status", http.HandlerFunc(status))
}

func (c *OrderController) handleOrders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.createOrder(w, r)
	case http.MethodGet:
		c.getOrders(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.OrderResponse]("method not allowed"))
	}
}

func (c *OrderController) createOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.OrderResponse]("invalid request body", err.Error()))
		return
	}

	response, err := c.service.CreateOrder(r.Context(), req)
	if err != nil {
		writeJSON(w, statusForFailure(response.Message), response)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

// getOrders returns a merchant's orders, narrowed to the pending ones in
// range when startDate and endDate query params are present.
func (c *OrderController) getOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	merchantID := query.Get("merchantId")
	startDate := query.Get("startDate")
	endDate := query.Get("endDate")

	if startDate != "" || endDate != "" {
		response, err := c.service.GetOrdersByDateRange(r.Context(), models.GetOrdersByDateRangeRequest{
			MerchantID: merchantID,
			StartDate:  startDate,
			EndDate:    endDate,
		})
		if err != nil {
			writeJSON(w, statusForFailure(response.Message), response)
			return
		}
		writeJSON(w, http.StatusOK, response)
		return
	}

	response, err := c.service.GetOrdersByMerchant(r.Context(), merchantID)
	if err != nil {
		writeJSON(w, statusForFailure(response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *OrderController) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.OrderResponse]("method not allowed"))
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.OrderResponse]("invalid request body", err.Error()))
		return
	}

	response, err := c.service.UpdateOrderStatus(r.Context(), req)
	if err != nil {
		writeJSON(w, statusForFailure(response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
