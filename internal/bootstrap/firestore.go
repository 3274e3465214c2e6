package bootstrap

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"

	"github.com/GregMSThompson/bonuses-backend/internal/config"
	"github.com/GregMSThompson/bonuses-backend/internal/credentials"
	"github.com/GregMSThompson/bonuses-backend/internal/metrics"
)

func FirestoreProviders(cfg config.FirestoreConfig) []credentials.Provider {
	return []credentials.Provider{
		credentials.File{Key: "FIRESTORE_APPLICATION_CREDENTIALS", Path: cfg.CredentialsFile},
		credentials.JSON{Key: "FIRESTORE_CREDENTIALS_JSON", JSON: cfg.CredentialsJSON},
		credentials.Secret{Key: "FIRESTORE_CREDENTIALS_SECRET", Name: cfg.CredentialsSecret},
		credentials.Project{Key: "FIRESTORE_PROJECT_ID", ProjectID: cfg.ProjectID},
	}
}

// ConnectFirestore returns the deferred constructor for the Firestore store.
func ConnectFirestore(cfg config.FirestoreConfig, log *slog.Logger) func(ctx context.Context) (*firestore.Client, error) {
	return func(ctx context.Context) (*firestore.Client, error) {
		client, err := InitFirestore(ctx, log, cfg)
		metrics.ObserveInit("firestore", err)
		if err != nil {
			log.Warn("firestore initialization failed", "error", err)
		}
		return client, err
	}
}

func InitFirestore(ctx context.Context, log *slog.Logger, cfg config.FirestoreConfig) (*firestore.Client, error) {
	creds, err := credentials.Resolve(ctx, FirestoreProviders(cfg)...)
	if err != nil {
		return nil, err
	}

	projectID := cfg.ProjectID
	if projectID == "" {
		projectID = creds.ProjectID
	}

	app, err := InitFirebase(ctx, projectID, creds.Options...)
	if err != nil {
		return nil, err
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, err
	}

	log.Info("firestore initialized", "credentials", creds.Source, "project_id", projectID)
	return client, nil
}
