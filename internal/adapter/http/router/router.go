package router

import "net/http"

type MerchantRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type OrderRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type DisbursementRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

func New(
	merchantController MerchantRouteRegistrar,
	orderController OrderRouteRegistrar,
	disbursementController DisbursementRouteRegistrar,
	authMiddleware func(http.Handler) http.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()

	if merchantController != nil {
		merchantController.RegisterRoutes(mux, authMiddleware)
	}
	if orderController != nil {
		orderController.RegisterRoutes(mux, authMiddleware)
	}
	if disbursementController != nil {
		disbursementController.RegisterRoutes(mux, authMiddleware)
	}

	return mux
}
