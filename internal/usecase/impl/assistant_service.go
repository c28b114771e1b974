package impl

import (
	"context"
	"log/slog"

	"showmyshop/internal/domain/assistant"
	"showmyshop/internal/domain/entity"
	"showmyshop/internal/domain/repository"
	"showmyshop/internal/usecase"
)

// assistantService implements the AssistantUsecase interface.
type assistantService struct {
	shopRepo repository.ShopRepository
	logger   *slog.Logger
}

// NewAssistantService is the constructor for assistantService.
func NewAssistantService(shopRepo repository.ShopRepository, logger *slog.Logger) usecase.AssistantUsecase {
	return &assistantService{
		shopRepo: shopRepo,
		logger:   logger,
	}
}

// Respond answers one message. Store failures produce an apology reply
// instead of an error.
func (srv *assistantService) Respond(ctx context.Context, message string) (*usecase.AssistantReply, error) {
	if !assistant.IsShopQuery(message) {
		return &usecase.AssistantReply{
			Reply: assistant.CannedReply(message),
			Shops: []*entity.Shop{},
		}, nil
	}

	shops, err := srv.shopRepo.List(ctx, entity.ShopFilter{})
	if err != nil {
		srv.logger.ErrorContext(ctx, "Failed to load shops for assistant", slog.Any("error", err))

		return &usecase.AssistantReply{
			Reply: assistant.ReplyUnhealthy,
			Shops: []*entity.Shop{},
		}, nil
	}

	if len(shops) == 0 {
		return &usecase.AssistantReply{
			Reply: assistant.ReplyNoShops,
			Shops: []*entity.Shop{},
		}, nil
	}

	matches := assistant.Match(shops, message)
	if matches == nil {
		matches = []*entity.Shop{}
	}

	return &usecase.AssistantReply{
		Reply: assistant.FormatMatches(matches),
		Shops: matches,
	}, nil
}
