package store

import (
	"context"

	"google.golang.org/api/sheets/v4"

	"github.com/GregMSThompson/bonuses-backend/internal/errs"
	"github.com/GregMSThompson/bonuses-backend/internal/lazy"
	"github.com/GregMSThompson/bonuses-backend/internal/models"
	"github.com/GregMSThompson/bonuses-backend/internal/normalize"
)

type sheetsBonusStore struct {
	sheetID string
	service *lazy.Value[*sheets.Service]
}

// NewSheetsBonusStore does not connect; connect runs on the first read.
func NewSheetsBonusStore(sheetID string, connect func(ctx context.Context) (*sheets.Service, error)) *sheetsBonusStore {
	return &sheetsBonusStore{
		sheetID: sheetID,
		service: lazy.New(connect),
	}
}

func (s *sheetsBonusStore) Name() string { return "sheets" }

func (s *sheetsBonusStore) ListBonuses(ctx context.Context) ([]models.Bonus, error) {
	svc, err := s.service.Get(ctx)
	if err != nil {
		return nil, errs.NewNotConfiguredError(s.Name(), err)
	}

	resp, err := svc.Spreadsheets.Values.Get(s.sheetID, BonusSheetRange).Context(ctx).Do()
	if err != nil {
		return nil, errs.NewFetchFailedError(s.Name(), err)
	}

	bonuses := make([]models.Bonus, 0, len(resp.Values))
	for i, row := range resp.Values {
		if normalize.BlankRow(row) {
			continue
		}
		bonuses = append(bonuses, normalize.Row(firstDataRow+i, row))
	}

	return bonuses, nil
}

func (s *sheetsBonusStore) Close() error {
	// the Sheets service holds no connection of its own
	return s.service.Close(func(*sheets.Service) error { return nil })
}
