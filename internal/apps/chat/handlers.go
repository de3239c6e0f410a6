package chat

import (
	"errors"
	"io"
	"strings"

	"github.com/agrocare/agrocare-backend/internal/dto"
	"github.com/agrocare/agrocare-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

type ChatHandler struct {
	chatService *ChatService
}

func NewChatHandler(chatService *ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) Ask(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Message is required",
		})
	}

	resp, err := h.chatService.Ask(c.Context(), userID, req.Message, c.Query("model"))
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(resp)
}

// AnalyzeImage handles POST /ai-chat/analyze-image - multipart form with
// the plant photo under `image` and an optional `message` prompt.
func (h *ChatHandler) AnalyzeImage(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: ErrImageRequired.Error(),
		})
	}
	if file.Size > maxAnalysisImageSize {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: ErrAnalysisTooLarge.Error(),
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to read image",
		})
	}
	defer src.Close()
	image, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to read image",
		})
	}

	resp, err := h.chatService.AnalyzeImage(c.Context(), userID, c.FormValue("message"), file.Header.Get("Content-Type"), image)
	if err != nil {
		switch {
		case errors.Is(err, ErrImageRequired), errors.Is(err, ErrAnalysisTooLarge), errors.Is(err, ErrNotAnImage):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return upstreamError(c, err)
	}
	return c.JSON(resp)
}

func upstreamError(c *fiber.Ctx, err error) error {
	var upstream *UpstreamError
	switch {
	case errors.Is(err, ErrUpstreamAuth):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "authentication failed",
		})
	case errors.As(err, &upstream):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: upstream.Body,
		})
	}
	return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
		Error: true, Message: "AI service unavailable",
	})
}

func (h *ChatHandler) History(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	list, err := h.chatService.History(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch chat history",
		})
	}
	return c.JSON(list)
}
