package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/api-sage/disbursement-processor/internal/adapter/http/models"
	"github.com/api-sage/disbursement-processor/internal/commons"
)

type DisbursementService interface {
	Process(ctx context.Context, req models.ProcessDisbursementRequest) (commons.Response[models.ProcessDisbursementResponse], error)
	SettleMerchant(ctx context.Context, req models.SettleMerchantRequest) (commons.Response[models.SettleMerchantResponse], error)
	ListDisbursements(ctx context.Context) (commons.Response[[]models.DisbursementResponse], error)
	GetByMerchantAndDate(ctx context.Context, merchantID string, date time.Time) (commons.Response[models.DisbursementResponse], error)
}

type DisbursementController struct {
	service DisbursementService
}

func NewDisbursementController(service DisbursementService) *DisbursementController {
	return &DisbursementController{service: service}
}

func (c *DisbursementController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	list := http.HandlerFunc(c.handleDisbursements)
	process := http.HandlerFunc(c.processDisbursements)
	settle := http.HandlerFunc(c.settleMerchant)
	if authMiddleware != nil {
		list = authMiddleware(list).ServeHTTP
		process = authMiddleware(process).ServeHTTP
		settle = authMiddleware(settle).ServeHTTP
	}
	mux.Handle("/disbursements", http.HandlerFunc(list))
	mux.Handle("/disbursements/process", http.HandlerFunc(process))
	mux.Handle("/disbursements/settle", http.HandlerFunc(settle))
}

// handleDisbursements lists all disbursements, or looks one up when
// merchantId and date query params are present.
func (c *DisbursementController) handleDisbursements(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.DisbursementResponse]("method not allowed"))
		return
	}

	query := r.URL.Query()
	merchantID := strings.TrimSpace(query.Get("merchantId"))
	rawDate := strings.TrimSpace(query.Get("date"))

	if merchantID != "" || rawDate != "" {
		date, err := time.Parse(time.RFC3339, rawDate)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.DisbursementResponse]("validation failed", "date must be an RFC3339 timestamp"))
			return
		}

		response, err := c.service.GetByMerchantAndDate(r.Context(), merchantID, date)
		if err != nil {
			writeJSON(w, statusForFailure(response.Message), response)
			return
		}
		writeJSON(w, http.StatusOK, response)
		return
	}

	response, err := c.service.ListDisbursements(r.Context())
	if err != nil {
		writeJSON(w, statusForFailure(response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *DisbursementController) processDisbursements(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.ProcessDisbursementResponse]("method not allowed"))
		return
	}

	var req models.ProcessDisbursementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.ProcessDisbursementResponse]("invalid request body", err.Error()))
		return
	}

	response, err := c.service.Process(r.Context(), req)
	if err != nil {
		writeJSON(w, statusForFailure(response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *DisbursementController) settleMerchant(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.SettleMerchantResponse]("method not allowed"))
		return
	}

	var req models.SettleMerchantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.SettleMerchantResponse]("invalid request body", err.Error()))
		return
	}

	response, err := c.service.SettleMerchant(r.Context(), req)
	if err != nil {
		writeJSON(w, statusForFailure(response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
