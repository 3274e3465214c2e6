package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/bonuses-backend/internal/dto"
	"github.com/GregMSThompson/bonuses-backend/internal/models"
	"github.com/GregMSThompson/bonuses-backend/internal/response"
)

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type bonusService interface {
	ListBonuses(ctx context.Context) ([]models.Bonus, error)
}

type bonusHandlers struct {
	ResponseHandler response.ResponseHandler
	BonusSvc        bonusService
	now             func() time.Time
}

func NewBonusHandlers(deps *Deps) *bonusHandlers {
	return &bonusHandlers{
		ResponseHandler: deps.ResponseHandler,
		BonusSvc:        deps.BonusSvc,
		now:             time.Now,
	}
}

func (h *bonusHandlers) BonusRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListBonuses)
	r.Get("/health", h.Health)
	return r
}

func (h *bonusHandlers) ListBonuses(w http.ResponseWriter, r *http.Request) {
	bonuses, err := h.BonusSvc.ListBonuses(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, bonuses)
}

// Health never touches the bonus source.
func (h *bonusHandlers) Health(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Timestamp: h.now().UTC().Format(isoMillis),
	})
}
