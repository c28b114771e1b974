package handler

import (
	"log/slog"
	"net/http"

	"showmyshop/internal/delivery/api/response"
	"showmyshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AssistantHandlerParams holds dependencies for AssistantHandler, injected by Fx.
type AssistantHandlerParams struct {
	fx.In

	AssistantUC usecase.AssistantUsecase
	Logger      *slog.Logger
}

// AssistantHandler serves the chat assistant
type AssistantHandler struct {
	assistantUC usecase.AssistantUsecase
	logger      *slog.Logger
}

// NewAssistantHandler is the constructor for AssistantHandler
func NewAssistantHandler(params AssistantHandlerParams) *AssistantHandler {
	return &AssistantHandler{
		assistantUC: params.AssistantUC,
		logger:      params.Logger,
	}
}

// MessageRequest represents one chat message
type MessageRequest struct {
	Message string `json:"message" validate:"required"`
}

// PostMessage handles POST /assistant/messages
func (h *AssistantHandler) PostMessage(c echo.Context) error {
	var req MessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	reply, err := h.assistantUC.Respond(c.Request().Context(), req.Message)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reply)
}
