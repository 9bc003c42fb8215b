package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/api-sage/disbursement-processor/internal/adapter/http/models"
	"github.com/api-sage/disbursement-processor/internal/commons"
)

type MerchantService interface {
	CreateMerchant(ctx context.Context, req models.CreateMerchantRequest) (commons.Response[models.MerchantResponse], error)
	GetMerchant(ctx context.Context, id string) (commons.Response[models.MerchantResponse], error)
	ListMerchants(ctx context.Context) (commons.Response[[]models.MerchantResponse], error)
}

type MerchantController struct {
	service MerchantService
}

func NewMerchantController(service MerchantService) *MerchantController {
	return &MerchantController{service: service}
}

func (c *MerchantController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	collection := http.HandlerFunc(c.handleMerchants)
	item := http.HandlerFunc(c.handleMerchantByID)
	if authMiddleware != nil {
		collection = authMiddleware(collection).ServeHTTP
		item = authMiddleware(item).ServeHTTP
	}
	mux.Handle("/merchants", http.HandlerFunc(collection))
	mux.Handle("/merchants/", http.HandlerFunc(item))
}

func (c *MerchantController) handleMerchants(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.createMerchant(w, r)
	case http.MethodGet:
		c.listMerchants(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.MerchantResponse]("method not allowed"))
	}
}

func (c *MerchantController) createMerchant(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMerchantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.MerchantResponse]("invalid request body", err.Error()))
		return
	}

	response, err := c.service.CreateMerchant(r.Context(), req)
	if err != nil {
		writeJSON(w, statusForFailure(response.Message), response)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

func (c *MerchantController) listMerchants(w http.ResponseWriter, r *http.Request) {
	response, err := c.service.ListMerchants(r.Context())
	if err != nil {
		writeJSON(w, statusForFailure(response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *MerchantController) handleMerchantByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.MerchantResponse]("method not allowed"))
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/merchants/")
	response, err := c.service.GetMerchant(r.Context(), id)
	if err != nil {
		writeJSON(w, statusForFailure(response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
