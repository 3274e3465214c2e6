package bootstrap

import (
	"context"
	"log/slog"

	"google.golang.org/api/sheets/v4"

	"github.com/GregMSThompson/bonuses-backend/internal/config"
	"github.com/GregMSThompson/bonuses-backend/internal/credentials"
	"github.com/GregMSThompson/bonuses-backend/internal/errs"
	"github.com/GregMSThompson/bonuses-backend/internal/metrics"
)

var sheetsScopes = []string{sheets.SpreadsheetsReadonlyScope}

func SheetsProviders(cfg config.SheetsConfig) []credentials.Provider {
	return []credentials.Provider{
		credentials.File{Key: "GOOGLE_APPLICATION_CREDENTIALS", Path: cfg.CredentialsFile, Scopes: sheetsScopes},
		credentials.JSON{Key: "GOOGLE_CREDENTIALS_JSON", JSON: cfg.CredentialsJSON, Scopes: sheetsScopes},
		credentials.Secret{Key: "GOOGLE_CREDENTIALS_SECRET", Name: cfg.CredentialsSecret, Scopes: sheetsScopes},
		credentials.ServiceAccountKey{
			KeyName:     "GOOGLE_PRIVATE_KEY",
			EmailName:   "GOOGLE_CLIENT_EMAIL",
			PrivateKey:  cfg.PrivateKey,
			ClientEmail: cfg.ClientEmail,
			Scopes:      sheetsScopes,
		},
	}
}

// ConnectSheets returns the deferred constructor for the Sheets store.
func ConnectSheets(cfg config.SheetsConfig, log *slog.Logger) func(ctx context.Context) (*sheets.Service, error) {
	return func(ctx context.Context) (*sheets.Service, error) {
		svc, err := InitSheets(ctx, log, cfg)
		metrics.ObserveInit("sheets", err)
		if err != nil {
			log.Warn("sheets initialization failed", "error", err)
		}
		return svc, err
	}
}

func InitSheets(ctx context.Context, log *slog.Logger, cfg config.SheetsConfig) (*sheets.Service, error) {
	if cfg.SheetID == "" {
		return nil, errs.NewMissingConfigurationError("GOOGLE_SHEET_ID")
	}

	creds, err := credentials.Resolve(ctx, SheetsProviders(cfg)...)
	if err != nil {
		return nil, err
	}

	svc, err := sheets.NewService(ctx, creds.Options...)
	if err != nil {
		return nil, err
	}

	log.Info("sheets initialized", "credentials", creds.Source)
	return svc, nil
}
