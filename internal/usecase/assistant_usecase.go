package usecase

import (
	"context"

	"showmyshop/internal/domain/entity"
)

// AssistantReply is the answer to one chat message
type AssistantReply struct {
	Reply string         `json:"reply"`
	Shops []*entity.Shop `json:"shops"`
}

// AssistantUsecase answers chat messages about shops
type AssistantUsecase interface {
	Respond(ctx context.Context, message string) (*AssistantReply, error)
}
