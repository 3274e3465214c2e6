package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Source string

const (
	SourceFirestore Source = "firestore"
	SourceSheets    Source = "sheets"
)

type Config struct {
	Port      string `env:"PORT"         envDefault:"8080"`
	LogLevel  string `env:"LOGLEVEL"     envDefault:"info"`
	LogFormat string `env:"LOGFORMAT"    envDefault:"cloudrun"`
	Source    Source `env:"BONUS_SOURCE" envDefault:"firestore"`
	Firestore FirestoreConfig
	Sheets    SheetsConfig
}

// FirestoreConfig options are tried in field order; ProjectID doubles as an
// override for the project named inside the credentials.
type FirestoreConfig struct {
	CredentialsFile   string `env:"FIRESTORE_APPLICATION_CREDENTIALS"`
	CredentialsJSON   string `env:"FIRESTORE_CREDENTIALS_JSON"`
	CredentialsSecret string `env:"FIRESTORE_CREDENTIALS_SECRET"`
	ProjectID         string `env:"FIRESTORE_PROJECT_ID"`
}

type SheetsConfig struct {
	SheetID           string `env:"GOOGLE_SHEET_ID"`
	CredentialsFile   string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	CredentialsJSON   string `env:"GOOGLE_CREDENTIALS_JSON"`
	CredentialsSecret string `env:"GOOGLE_CREDENTIALS_SECRET"`
	PrivateKey        string `env:"GOOGLE_PRIVATE_KEY"`
	ClientEmail       string `env:"GOOGLE_CLIENT_EMAIL"`
}

// New reads the environment, after loading .env from the working directory
// when one exists. Variables already set in the environment win.
func New() (*Config, error) {
	return load(".env")
}

func load(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := new(Config)
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	switch cfg.Source {
	case SourceFirestore, SourceSheets:
	default:
		return nil, fmt.Errorf("BONUS_SOURCE must be %q or %q, got %q", SourceFirestore, SourceSheets, cfg.Source)
	}

	return cfg, nil
}
