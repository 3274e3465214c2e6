package credentials

import (
	"context"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"

	"github.com/GregMSThompson/bonuses-backend/internal/errs"
)

// SecretAccessor returns the payload of a secret version.
type SecretAccessor func(ctx context.Context, name string) ([]byte, error)

// Secret reads service account JSON out of Secret Manager. Name is a secret
// ("projects/p/secrets/s") or a specific version; bare secrets read latest.
type Secret struct {
	Key    string
	Name   string
	Scopes []string
	Access SecretAccessor
}

func (s Secret) Names() []string  { return []string{s.Key} }
func (s Secret) Configured() bool { return s.Name != "" }

func (s Secret) Resolve(ctx context.Context) (*Credentials, error) {
	access := s.Access
	if access == nil {
		access = AccessSecretManager
	}

	name := VersionName(s.Name)
	raw, err := access(ctx, name)
	if err != nil {
		return nil, errs.NewCredentialsNotFoundError(name, err)
	}
	return fromJSON(s.Key, raw, s.Scopes)
}

func VersionName(name string) string {
	if strings.Contains(name, "/versions/") {
		return name
	}
	return strings.TrimSuffix(name, "/") + "/versions/latest"
}

// AccessSecretManager reads a secret version using ambient credentials.
func AccessSecretManager(ctx context.Context, name string) ([]byte, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	res, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return nil, err
	}
	return res.Payload.Data, nil
}
