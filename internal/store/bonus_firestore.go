package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/GregMSThompson/bonuses-backend/internal/errs"
	"github.com/GregMSThompson/bonuses-backend/internal/lazy"
	"github.com/GregMSThompson/bonuses-backend/internal/models"
	"github.com/GregMSThompson/bonuses-backend/internal/normalize"
)

type firestoreBonusStore struct {
	client *lazy.Value[*firestore.Client]
}

// NewFirestoreBonusStore does not connect; connect runs on the first read.
func NewFirestoreBonusStore(connect func(ctx context.Context) (*firestore.Client, error)) *firestoreBonusStore {
	return &firestoreBonusStore{client: lazy.New(connect)}
}

func (s *firestoreBonusStore) Name() string { return "firestore" }

func (s *firestoreBonusStore) ListBonuses(ctx context.Context) ([]models.Bonus, error) {
	client, err := s.client.Get(ctx)
	if err != nil {
		return nil, errs.NewNotConfiguredError(s.Name(), err)
	}

	iter := client.Collection(BonusCollection).Documents(ctx)
	defer iter.Stop()

	bonuses := make([]models.Bonus, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewFetchFailedError(s.Name(), err)
		}
		bonuses = append(bonuses, normalize.Document(doc.Ref.ID, doc.Data()))
	}

	return bonuses, nil
}

func (s *firestoreBonusStore) Close() error {
	return s.client.Close(func(c *firestore.Client) error {
		return c.Close()
	})
}
