package bootstrap

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// InitFirebase builds the app Firestore clients hang off. An empty projectID
// leaves project detection to the SDK.
func InitFirebase(ctx context.Context, projectID string, opts ...option.ClientOption) (*firebase.App, error) {
	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}
	return firebase.NewApp(ctx, conf, opts...)
}
