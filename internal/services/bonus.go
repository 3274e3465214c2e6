package services

import (
	"context"
	"time"

	"github.com/GregMSThompson/bonuses-backend/internal/metrics"
	"github.com/GregMSThompson/bonuses-backend/internal/models"
	"github.com/GregMSThompson/bonuses-backend/pkg/logger"
)

type bonusBSStore interface {
	Name() string
	ListBonuses(ctx context.Context) ([]models.Bonus, error)
}

type bonusService struct {
	Store bonusBSStore
}

func NewBonusService(store bonusBSStore) *bonusService {
	return &bonusService{
		Store: store,
	}
}

// ListBonuses performs one full read of the active source. It returns either
// every record or an error, never a partial list.
func (s *bonusService) ListBonuses(ctx context.Context) ([]models.Bonus, error) {
	source := s.Store.Name()
	log, ctx := logger.With(ctx, "source", source)

	start := time.Now()
	bonuses, err := s.Store.ListBonuses(ctx)
	metrics.ObserveFetch(source, start, len(bonuses), err)
	if err != nil {
		// logged once by the response handler
		return nil, err
	}

	log.Debug("bonuses fetched", "count", len(bonuses), "duration", time.Since(start))
	return bonuses, nil
}
