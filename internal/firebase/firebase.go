package firebase

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/example/tutormarket/internal/config"
)

// ErrNotConfigured is returned when no Firebase credential source is set.
var ErrNotConfigured = errors.New("firebase credentials are not configured")

// serviceAccount is the subset of a service account key file the Admin SDK
// needs to verify ID tokens.
type serviceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
	TokenURI    string `json:"token_uri"`
}

// CredentialsOption picks the credential source, in order: key file path,
// base64 encoded key file, discrete service account fields.
func CredentialsOption(cfg *config.Config) (option.ClientOption, error) {
	switch {
	case cfg.GoogleApplicationCredentials != "":
		return option.WithCredentialsFile(cfg.GoogleApplicationCredentials), nil
	case cfg.FirebaseServiceAccountJSONBase64 != "":
		jsonKey, err := base64.StdEncoding.DecodeString(cfg.FirebaseServiceAccountJSONBase64)
		if err != nil {
			return nil, errors.New("FIREBASE_SERVICE_ACCOUNT_JSON_BASE64 is not a valid base64 string")
		}
		return option.WithCredentialsJSON(jsonKey), nil
	case cfg.FirebaseProjectID != "" && cfg.FirebaseClientEmail != "" && cfg.FirebasePrivateKey != "":
		jsonKey, err := serviceAccountJSON(cfg)
		if err != nil {
			return nil, err
		}
		return option.WithCredentialsJSON(jsonKey), nil
	default:
		return nil, ErrNotConfigured
	}
}

func serviceAccountJSON(cfg *config.Config) ([]byte, error) {
	return json.Marshal(serviceAccount{
		Type:        "service_account",
		ProjectID:   cfg.FirebaseProjectID,
		ClientEmail: cfg.FirebaseClientEmail,
		PrivateKey:  cfg.FirebasePrivateKey,
		TokenURI:    "https://oauth2.googleapis.com/token",
	})
}

// NewAuthClient initializes the Firebase Admin SDK and returns its Auth client.
func NewAuthClient(ctx context.Context, cfg *config.Config) (*auth.Client, error) {
	opt, err := CredentialsOption(cfg)
	if err != nil {
		return nil, err
	}

	var conf *firebase.Config
	if cfg.FirebaseProjectID != "" {
		conf = &firebase.Config{ProjectID: cfg.FirebaseProjectID}
	}

	app, err := firebase.NewApp(ctx, conf, opt)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("app.Auth: %w", err)
	}
	return client, nil
}
