package auth

import (
	"context"

	"showmyshop/config"
	"showmyshop/internal/domain/entity"
	"showmyshop/internal/domain/service"
	"showmyshop/internal/errors"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

type firebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier verifies Firebase ID tokens with the Admin SDK.
// Application default credentials are used when no credentials file is set.
func NewFirebaseVerifier(ctx context.Context, cfg *config.FirebaseConfig) (service.IdentityVerifier, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

func (v *firebaseVerifier) Verify(ctx context.Context, idToken string) (*entity.Caller, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "verify id token")
	}

	return callerFromClaims(token.UID, token.Claims)
}

func callerFromClaims(uid string, claims map[string]any) (*entity.Caller, error) {
	email := stringClaim(claims, "email")
	if email == "" {
		return nil, errors.New("token has no email claim")
	}

	return &entity.Caller{
		UID:         uid,
		Email:       email,
		DisplayName: stringClaim(claims, "name"),
		PhotoURL:    stringClaim(claims, "picture"),
	}, nil
}

func stringClaim(claims map[string]any, key string) string {
	value, _ := claims[key].(string)

	return value
}
