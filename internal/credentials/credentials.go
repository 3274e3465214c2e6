package credentials

import (
	"context"
	"encoding/json"

	"google.golang.org/api/option"

	"github.com/GregMSThompson/bonuses-backend/internal/errs"
)

// Credentials is the outcome of a resolution: client options ready to hand to
// a Google client constructor, plus the project the credentials belong to.
type Credentials struct {
	Source    string // config key of the provider that produced these
	Options   []option.ClientOption
	ProjectID string
}

// Provider is one way of authenticating, backed by one or more config keys.
type Provider interface {
	Names() []string
	Configured() bool
	Resolve(ctx context.Context) (*Credentials, error)
}

// Resolve uses the first configured provider, in the order given. When none
// is configured the error names every key the caller could set.
func Resolve(ctx context.Context, providers ...Provider) (*Credentials, error) {
	for _, p := range providers {
		if p.Configured() {
			return p.Resolve(ctx)
		}
	}

	var names []string
	for _, p := range providers {
		names = append(names, p.Names()...)
	}
	return nil, errs.NewMissingConfigurationError(names...)
}

type serviceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
}

func fromJSON(source string, raw []byte, scopes []string) (*Credentials, error) {
	var sa serviceAccount
	if err := json.Unmarshal(raw, &sa); err != nil {
		return nil, errs.NewCredentialsParseError(source, err)
	}

	opts := []option.ClientOption{option.WithCredentialsJSON(raw)}
	if len(scopes) > 0 {
		opts = append(opts, option.WithScopes(scopes...))
	}

	return &Credentials{
		Source:    source,
		Options:   opts,
		ProjectID: sa.ProjectID,
	}, nil
}
