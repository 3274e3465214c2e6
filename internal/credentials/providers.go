package credentials

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"

	"github.com/GregMSThompson/bonuses-backend/internal/errs"
)

// File reads a service account JSON file. Relative paths resolve against the
// working directory.
type File struct {
	Key    string
	Path   string
	Scopes []string
}

func (f File) Names() []string  { return []string{f.Key} }
func (f File) Configured() bool { return f.Path != "" }

func (f File) Resolve(_ context.Context) (*Credentials, error) {
	path, err := filepath.Abs(f.Path)
	if err != nil {
		return nil, errs.NewCredentialsNotFoundError(f.Path, err)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errs.NewCredentialsNotFoundError(path, err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.NewCredentialsNotFoundError(path, err)
	}
	return fromJSON(f.Key, raw, f.Scopes)
}

// JSON holds the service account JSON inline, for hosts where mounting a file
// is awkward.
type JSON struct {
	Key    string
	JSON   string
	Scopes []string
}

func (j JSON) Names() []string  { return []string{j.Key} }
func (j JSON) Configured() bool { return j.JSON != "" }

func (j JSON) Resolve(_ context.Context) (*Credentials, error) {
	return fromJSON(j.Key, []byte(j.JSON), j.Scopes)
}

// ServiceAccountKey authenticates with a discrete private key + client email.
// Both must be set.
type ServiceAccountKey struct {
	KeyName     string
	EmailName   string
	PrivateKey  string
	ClientEmail string
	Scopes      []string
}

func (s ServiceAccountKey) Names() []string  { return []string{s.KeyName, s.EmailName} }
func (s ServiceAccountKey) Configured() bool { return s.PrivateKey != "" && s.ClientEmail != "" }

func (s ServiceAccountKey) Resolve(ctx context.Context) (*Credentials, error) {
	cfg := &jwt.Config{
		Email:      s.ClientEmail,
		PrivateKey: []byte(FormatPrivateKey(s.PrivateKey)),
		Scopes:     s.Scopes,
		TokenURL:   google.JWTTokenURL,
	}

	// the token source outlives the request that triggered resolution
	ts := cfg.TokenSource(context.WithoutCancel(ctx))

	return &Credentials{
		Source:  s.KeyName,
		Options: []option.ClientOption{option.WithTokenSource(ts)},
	}, nil
}

// FormatPrivateKey undoes the usual damage env files do to PEM keys: wrapping
// quotes and literal \n sequences.
func FormatPrivateKey(key string) string {
	key = strings.TrimSpace(key)
	key = strings.TrimPrefix(key, `"`)
	key = strings.TrimPrefix(key, `'`)
	key = strings.TrimSuffix(key, `"`)
	key = strings.TrimSuffix(key, `'`)
	key = strings.ReplaceAll(key, `\n`, "\n")
	return strings.TrimSpace(key)
}

// Project relies on Application Default Credentials for the given project.
type Project struct {
	Key       string
	ProjectID string
}

func (p Project) Names() []string  { return []string{p.Key} }
func (p Project) Configured() bool { return p.ProjectID != "" }

func (p Project) Resolve(_ context.Context) (*Credentials, error) {
	return &Credentials{Source: p.Key, ProjectID: p.ProjectID}, nil
}
