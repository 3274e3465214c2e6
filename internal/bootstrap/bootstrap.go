package bootstrap

import (
	"context"
	"log/slog"

	"github.com/GregMSThompson/bonuses-backend/internal/config"
	"github.com/GregMSThompson/bonuses-backend/internal/models"
	"github.com/GregMSThompson/bonuses-backend/internal/store"
	"github.com/GregMSThompson/bonuses-backend/pkg/logger"
)

// BonusSource is the one active backend of a deployment.
type BonusSource interface {
	Name() string
	ListBonuses(ctx context.Context) ([]models.Bonus, error)
	Close() error
}

type Bootstrap struct {
	Log    *slog.Logger
	Source BonusSource
}

// Run wires the process. Nothing here talks to a backend; clients are built
// on the first request.
func Run(cfg *config.Config) (*Bootstrap, error) {
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.HandlerFor(cfg.LogFormat))
	bs.Source = NewBonusSource(cfg, bs.Log)

	bs.Log.Info("bonus source loaded, will initialize on first request", "source", bs.Source.Name())
	return bs, nil
}

func NewBonusSource(cfg *config.Config, log *slog.Logger) BonusSource {
	switch cfg.Source {
	case config.SourceSheets:
		return store.NewSheetsBonusStore(cfg.Sheets.SheetID, ConnectSheets(cfg.Sheets, log))
	default:
		return store.NewFirestoreBonusStore(ConnectFirestore(cfg.Firestore, log))
	}
}

func (bs *Bootstrap) Close() {
	if bs.Source == nil {
		return
	}
	if err := bs.Source.Close(); err != nil {
		bs.Log.Error("bonus source close failed", "source", bs.Source.Name(), "error", err)
	}
}
