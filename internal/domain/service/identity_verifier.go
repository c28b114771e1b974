package service

import (
	"context"

	"showmyshop/internal/domain/entity"
)

// IdentityVerifier turns a bearer token issued by the identity provider into
// a verified caller. Admin is left for the caller of Verify to decide.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*entity.Caller, error)
}

// TokenIssuer signs tokens for the local identity provider.
type TokenIssuer interface {
	Issue(caller *entity.Caller) (string, error)
}
