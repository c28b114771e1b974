package auth

import (
	"context"
	"log/slog"

	"showmyshop/config"
	"showmyshop/internal/domain/constants"
	"showmyshop/internal/domain/entity"
	"showmyshop/internal/domain/lifecycle"
	"showmyshop/internal/domain/service"
	"showmyshop/internal/errors"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Result exposes the identity services. Issuer is nil unless the local
// jwt provider is configured.
type Result struct {
	fx.Out

	Verifier service.IdentityVerifier
	Issuer   service.TokenIssuer
}

// NewProvider selects the identity provider configured by auth.provider.
func NewProvider(params Params) (Result, error) {
	cfg := params.Config.Auth

	switch cfg.Provider {
	case constants.AuthProviderFirebase:
		if params.Config.Firebase == nil {
			return Result{}, errors.New("firebase configuration is required for the firebase identity provider")
		}

		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		verifier, err := NewFirebaseVerifier(ctx, params.Config.Firebase)
		if err != nil {
			return Result{}, err
		}

		params.Logger.Info("Using Firebase identity provider", slog.String("projectId", params.Config.Firebase.ProjectID))

		return Result{Verifier: WithAdmins(verifier, cfg.AdminEmails)}, nil

	case constants.AuthProviderJWT:
		jwtService, err := NewJWTService(cfg)
		if err != nil {
			return Result{}, err
		}

		params.Logger.Info("Using local JWT identity provider")

		return Result{Verifier: WithAdmins(jwtService, cfg.AdminEmails), Issuer: jwtService}, nil

	default:
		return Result{}, errors.Errorf("unsupported auth provider: %s", cfg.Provider)
	}
}

type adminVerifier struct {
	next   service.IdentityVerifier
	admins map[string]struct{}
}

// WithAdmins marks callers whose email is listed in admins as administrators.
func WithAdmins(next service.IdentityVerifier, admins []string) service.IdentityVerifier {
	set := make(map[string]struct{}, len(admins))
	for _, email := range admins {
		set[email] = struct{}{}
	}

	return &adminVerifier{next: next, admins: set}
}

func (v *adminVerifier) Verify(ctx context.Context, token string) (*entity.Caller, error) {
	caller, err := v.next.Verify(ctx, token)
	if err != nil {
		return nil, err
	}

	_, caller.Admin = v.admins[caller.Email]

	return caller, nil
}
