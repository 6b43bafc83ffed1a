package rest

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"

	"github.com/heartmarshall/travelplan-backend/internal/config"
	"github.com/heartmarshall/travelplan-backend/internal/domain"
	"github.com/heartmarshall/travelplan-backend/internal/export"
	"github.com/heartmarshall/travelplan-backend/internal/service/itinerary"
	"github.com/heartmarshall/travelplan-backend/internal/service/planner"
	"github.com/heartmarshall/travelplan-backend/pkg/ctxutil"
)

//go:generate moq -out itinerary_service_mock_test.go -pkg rest . itineraryService
//go:generate moq -out candidate_adder_mock_test.go -pkg rest . candidateAdder

type itineraryService interface {
	CreateItinerary(ctx context.Context, ownerID uuid.UUID, input itinerary.CreateItineraryInput) (*domain.Itinerary, error)
	GetItinerary(ctx context.Context, ownerID, id uuid.UUID) (*domain.Itinerary, error)
	ListItineraries(ctx context.Context, ownerID uuid.UUID) ([]*domain.Itinerary, error)
	UpdateItinerary(ctx context.Context, ownerID uuid.UUID, input itinerary.UpdateItineraryInput) (*domain.Itinerary, error)
	DeleteItinerary(ctx context.Context, ownerID, id uuid.UUID) error
	DayPlan(ctx context.Context, ownerID, id uuid.UUID) (*domain.Itinerary, []domain.DayPlan, error)

	AddItem(ctx context.Context, ownerID uuid.UUID, input itinerary.AddItemInput) (*domain.Item, error)
	GetItem(ctx context.Context, ownerID, itemID uuid.UUID) (*domain.Item, error)
	UpdateItemStatus(ctx context.Context, ownerID uuid.UUID, input itinerary.UpdateItemStatusInput) (*domain.Item, error)
	DeleteItem(ctx context.Context, ownerID, itineraryID, itemID uuid.UUID) error
}

type candidateAdder interface {
	Add(ctx context.Context, ownerID, itineraryID uuid.UUID, c planner.Candidate) (*domain.Item, error)
}

// ItineraryHandler serves the travel plan REST endpoints. Every endpoint
// requires an authenticated owner.
type ItineraryHandler struct {
	svc        itineraryService
	candidates candidateAdder
	export     config.ExportConfig
	log        *slog.Logger
}

// NewItineraryHandler creates an ItineraryHandler.
func NewItineraryHandler(svc itineraryService, candidates candidateAdder, exportCfg config.ExportConfig, logger *slog.Logger) *ItineraryHandler {
	return &ItineraryHandler{
		svc:        svc,
		candidates: candidates,
		export:     exportCfg,
		log:        logger.With("handler", "itinerary"),
	}
}

// requireOwner returns the authenticated owner or writes a 401.
func requireOwner(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, domain.KindUnauthorized, "authentication required")
		return uuid.Nil, false
	}
	return ownerID, true
}

// List handles GET /api/travel-plans.
func (h *ItineraryHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	its, err := h.svc.ListItineraries(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	out := make([]itineraryResponse, 0, len(its))
	for _, it := range its {
		out = append(out, toItineraryResponse(it))
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "travel_plans": out})
}

// Create handles POST /api/travel-plans.
func (h *ItineraryHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var req createItineraryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	it, err := h.svc.CreateItinerary(r.Context(), ownerID, input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "travel_plan": toItineraryResponse(it)})
}

// Get handles GET /api/travel-plans/:id.
func (h *ItineraryHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	it, ok := h.loadItinerary(w, r, ps)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "itinerary": toItineraryResponse(it)})
}

// Update handles PATCH /api/travel-plans/:id.
func (h *ItineraryHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}
	id, err := pathID(ps, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	input, err := decodeItineraryPatch(w, r, id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	it, err := h.svc.UpdateItinerary(r.Context(), ownerID, input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "travel_plan": toItineraryResponse(it)})
}

// Delete handles DELETE /api/travel-plans/:id. Deleting a missing plan
// succeeds.
func (h *ItineraryHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}
	id, err := pathID(ps, "id")
	if err != nil {
		// Nothing with that id can exist.
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
		return
	}

	if err := h.svc.DeleteItinerary(r.Context(), ownerID, id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Days handles GET /api/travel-plans/:id/days.
func (h *ItineraryHandler) Days(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}
	id, err := pathID(ps, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	it, days, err := h.svc.DayPlan(r.Context(), ownerID, id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"itinerary_id": it.ID.String(),
		"days":         toDayResponses(days),
	})
}

// AddItem handles POST /api/travel-plans/:id/items.
func (h *ItineraryHandler) AddItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}
	id, err := pathID(ps, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req addItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	input, err := req.toInput(id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	item, err := h.svc.AddItem(r.Context(), ownerID, input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "item": toItemResponse(item)})
}

// AddCandidate handles POST /api/travel-plans/:id/candidates: a search
// result from event, hotel or flight search.
func (h *ItineraryHandler) AddCandidate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}
	id, err := pathID(ps, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var payload planner.Payload
	if err := decodeJSON(w, r, &payload); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	candidate, err := payload.Candidate()
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	item, err := h.candidates.Add(r.Context(), ownerID, id, candidate)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "item": toItemResponse(item)})
}

// GetItem handles GET /api/travel-plans/:id/items/:itemId.
func (h *ItineraryHandler) GetItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}
	itineraryID, err := pathID(ps, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	itemID, err := pathID(ps, "itemId")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	item, err := h.svc.GetItem(r.Context(), ownerID, itemID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if item.ItineraryID != itineraryID {
		writeServiceError(w, r, h.log, fmt.Errorf("item %s in itinerary %s: %w", itemID, itineraryID, domain.ErrNotFound))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "item": toItemResponse(item)})
}

// UpdateItem handles PATCH /api/travel-plans/:id/items/:itemId. Only the
// status can change.
func (h *ItineraryHandler) UpdateItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}
	itineraryID, err := pathID(ps, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	itemID, err := pathID(ps, "itemId")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req updateItemStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	item, err := h.svc.UpdateItemStatus(r.Context(), ownerID, itinerary.UpdateItemStatusInput{
		ItineraryID: itineraryID,
		ItemID:      itemID,
		Status:      req.Status,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "item": toItemResponse(item)})
}

// DeleteItem handles DELETE /api/travel-plans/:id/items/:itemId. Deleting
// a missing item succeeds.
func (h *ItineraryHandler) DeleteItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}
	itineraryID, err := pathID(ps, "id")
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
		return
	}
	itemID, err := pathID(ps, "itemId")
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
		return
	}

	if err := h.svc.DeleteItem(r.Context(), ownerID, itineraryID, itemID); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// ExportICS handles GET /api/travel-plans/:id/export.ics.
func (h *ItineraryHandler) ExportICS(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	it, ok := h.loadItinerary(w, r, ps)
	if !ok {
		return
	}

	body, err := export.Calendar(it, h.export.ProductID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", attachment(it, "ics"))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body)) //nolint:errcheck
}

// ExportPDF handles GET /api/travel-plans/:id/export.pdf.
func (h *ItineraryHandler) ExportPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	it, ok := h.loadItinerary(w, r, ps)
	if !ok {
		return
	}

	var buf bytes.Buffer
	days := domain.GroupByDay(it.Items)
	if err := export.PDF(&buf, it, days, h.export.ShareURL(it.ID.String())); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", attachment(it, "pdf"))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck
}

// loadItinerary resolves :id for the authenticated owner, writing the
// error response itself when that fails.
func (h *ItineraryHandler) loadItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) (*domain.Itinerary, bool) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return nil, false
	}
	id, err := pathID(ps, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return nil, false
	}

	it, err := h.svc.GetItinerary(r.Context(), ownerID, id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return nil, false
	}
	return it, true
}

func attachment(it *domain.Itinerary, ext string) string {
	return fmt.Sprintf("attachment; filename=\"travel-plan-%s.%s\"", it.ID, ext)
}
