package chat

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/agrocare/agrocare-backend/internal/config"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxAnalysisImageSize = 5 * 1024 * 1024

// analysisSystemPrompt frames the vision model as a plant-disease expert
// answering in language a farmer can act on.
const analysisSystemPrompt = "You are a plant disease detection expert. Analyze the plant image and provide: " +
	"1) What disease or pest you detect 2) Confidence level 3) Description of the problem " +
	"4) Treatment recommendations. Be practical and use simple language for farmers. " +
	"If you cannot identify the plant or disease clearly, say so and suggest what to look for in a better image."

const defaultAnalysisPrompt = "Analyze this plant image for diseases, pests, or other issues. What's wrong and how can I treat it?"

var (
	// ErrUpstreamAuth signals a 401 from the primary provider; handlers map
	// it to a gateway error rather than passing the 401 through.
	ErrUpstreamAuth = errors.New("authentication failed")

	ErrImageRequired    = errors.New("image is required")
	ErrAnalysisTooLarge = errors.New("image size must be less than 5MB")
	ErrNotAnImage       = errors.New("only images are allowed")
)

// UpstreamError carries a non-2xx primary-provider response body.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Body)
}

// ChatService proxies user messages to whichever provider is configured.
// DeepSeek, when a key is present, is used exclusively and surfaces its
// failures. Hugging Face failures are swallowed into mock replies so the
// endpoint keeps answering 200. With no key at all the reply is a local
// echo marked mock.
type ChatService struct {
	db             *gorm.DB
	cfg            *config.Config
	deepSeekClient *http.Client
	hfClient       *http.Client
}

func NewChatService(db *gorm.DB, cfg *config.Config) *ChatService {
	return &ChatService{
		db:             db,
		cfg:            cfg,
		deepSeekClient: &http.Client{Timeout: cfg.DeepSeekTimeout},
		hfClient:       &http.Client{Timeout: cfg.HFTimeout},
	}
}

// Ask forwards the message and returns the normalized reply. The provider
// call runs without any DB session held; the history row is written after
// the reply is known, best-effort.
func (s *ChatService) Ask(ctx context.Context, userID uuid.UUID, message, model string) (*ChatResponse, error) {
	resp, err := s.dispatch(ctx, message, model)
	if err != nil {
		return nil, err
	}

	s.recordHistory(userID, message, resp.Reply)
	return resp, nil
}

// AnalyzeImage sends a plant photo to the vision model for disease and
// pest detection. The image travels inline as a base64 data URL, the way
// OpenAI-style vision endpoints expect it. Without a DeepSeek key the
// analysis degrades to a mock reply like the text path does.
func (s *ChatService) AnalyzeImage(ctx context.Context, userID uuid.UUID, message, contentType string, image []byte) (*ChatResponse, error) {
	if len(image) == 0 {
		return nil, ErrImageRequired
	}
	if len(image) > maxAnalysisImageSize {
		return nil, ErrAnalysisTooLarge
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAnImage
	}

	prompt := message
	if prompt == "" {
		prompt = defaultAnalysisPrompt
	}

	resp, err := s.dispatchAnalysis(ctx, prompt, contentType, image)
	if err != nil {
		return nil, err
	}

	s.recordHistory(userID, "[image] "+prompt, resp.Reply)
	return resp, nil
}

func (s *ChatService) dispatchAnalysis(ctx context.Context, prompt, contentType string, image []byte) (*ChatResponse, error) {
	if s.cfg.AIMockMode || s.cfg.DeepSeekAPIKey == "" {
		return mockReply(prompt), nil
	}

	dataURL := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(image)
	return s.callDeepSeek(ctx, map[string]interface{}{
		"model": s.cfg.DeepSeekVisionModel,
		"messages": []map[string]interface{}{
			{"role": "system", "content": analysisSystemPrompt},
			{"role": "user", "content": []map[string]interface{}{
				{"type": "text", "text": prompt},
				{"type": "image_url", "image_url": map[string]string{"url": dataURL}},
			}},
		},
		"max_tokens":  800,
		"temperature": 0.3,
	})
}

func (s *ChatService) dispatch(ctx context.Context, message, model string) (*ChatResponse, error) {
	if s.cfg.AIMockMode {
		return mockReply(message), nil
	}
	if s.cfg.DeepSeekAPIKey != "" {
		return s.askDeepSeek(ctx, message, model)
	}
	if s.cfg.HFAPIKey != "" {
		return s.askHuggingFace(ctx, message), nil
	}
	return mockReply(message), nil
}

func (s *ChatService) askDeepSeek(ctx context.Context, message, model string) (*ChatResponse, error) {
	if model == "" {
		model = s.cfg.DeepSeekModel
	}
	return s.callDeepSeek(ctx, map[string]interface{}{
		"model": model,
		"messages": []map[string]string{
			{"role": "user", "content": message},
		},
	})
}

func (s *ChatService) callDeepSeek(ctx context.Context, request map[string]interface{}) (*ChatResponse, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.DeepSeekAPIURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.DeepSeekAPIKey)

	httpResp, err := s.deepSeekClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	if httpResp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUpstreamAuth
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: httpResp.StatusCode, Body: string(body)}
	}

	return normalize(body), nil
}

// askHuggingFace never returns an error: any failure becomes a mock reply.
func (s *ChatService) askHuggingFace(ctx context.Context, message string) *ChatResponse {
	payload, err := json.Marshal(map[string]string{"inputs": message})
	if err != nil {
		return mockReply(message)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.HFAPIURL, bytes.NewReader(payload))
	if err != nil {
		return mockReply(message)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.HFAPIKey)

	httpResp, err := s.hfClient.Do(req)
	if err != nil {
		slog.Warn("huggingface call failed, falling back to mock", "error", err)
		return mockReply(message)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil || httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		slog.Warn("huggingface returned non-2xx, falling back to mock", "status", httpResp.StatusCode)
		return mockReply(message)
	}

	return normalize(body)
}

// normalize runs the extraction heuristic over the provider body; when
// nothing textual is found the raw JSON is returned as the reply.
func normalize(body []byte) *ChatResponse {
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return &ChatResponse{Reply: string(body)}
	}
	if reply, ok := ExtractReply(parsed); ok {
		return &ChatResponse{Reply: reply}
	}
	return &ChatResponse{Reply: string(body)}
}

func mockReply(message string) *ChatResponse {
	return &ChatResponse{
		Reply: "Mock reply: " + message,
		Mock:  true,
	}
}

func (s *ChatService) recordHistory(userID uuid.UUID, message, reply string) {
	row := AIChatHistory{
		ID:          uuid.New(),
		UserID:      userID,
		UserMessage: message,
		AIResponse:  reply,
	}
	if err := s.db.Create(&row).Error; err != nil {
		slog.Error("chat history write failed", "user_id", userID.String(), "error", err)
	}
}

func (s *ChatService) History(userID uuid.UUID) ([]AIChatHistory, error) {
	var list []AIChatHistory
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error
	return list, err
}
