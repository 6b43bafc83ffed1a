package rest

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
)

// HealthPaths are the unauthenticated probe routes.
var HealthPaths = []string{"/live", "/ready", "/health"}

// NewRouter registers all routes. Middleware is applied by the caller.
func NewRouter(health *HealthHandler, plans *ItineraryHandler) *httprouter.Router {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/live", health.Live)
	router.HandlerFunc(http.MethodGet, "/ready", health.Ready)
	router.HandlerFunc(http.MethodGet, "/health", health.Health)

	router.GET("/api/travel-plans", plans.List)
	router.POST("/api/travel-plans", plans.Create)
	router.GET("/api/travel-plans/:id", plans.Get)
	router.PATCH("/api/travel-plans/:id", plans.Update)
	router.DELETE("/api/travel-plans/:id", plans.Delete)
	router.GET("/api/travel-plans/:id/days", plans.Days)
	router.GET("/api/travel-plans/:id/export.ics", plans.ExportICS)
	router.GET("/api/travel-plans/:id/export.pdf", plans.ExportPDF)

	router.POST("/api/travel-plans/:id/items", plans.AddItem)
	router.POST("/api/travel-plans/:id/candidates", plans.AddCandidate)
	router.GET("/api/travel-plans/:id/items/:itemId", plans.GetItem)
	router.PATCH("/api/travel-plans/:id/items/:itemId", plans.UpdateItem)
	router.DELETE("/api/travel-plans/:id/items/:itemId", plans.DeleteItem)

	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, domain.KindNotFound, "route not found")
	})
	router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	return router
}
