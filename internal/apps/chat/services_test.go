package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agrocare/agrocare-backend/internal/config"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&AIChatHistory{}))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		DeepSeekModel:   "deepseek-chat",
		DeepSeekTimeout: 5 * time.Second,
		HFTimeout:       5 * time.Second,
	}
}

func TestAskWithoutProvidersReturnsMock(t *testing.T) {
	svc := NewChatService(testDB(t), testConfig())

	resp, err := svc.Ask(context.Background(), uuid.New(), "hello", "")
	require.NoError(t, err)
	assert.True(t, resp.Mock)
	assert.Contains(t, resp.Reply, "hello")
}

func TestAskMockModeOverridesConfiguredKeys(t *testing.T) {
	cfg := testConfig()
	cfg.AIMockMode = true
	cfg.DeepSeekAPIKey = "key"
	svc := NewChatService(testDB(t), cfg)

	resp, err := svc.Ask(context.Background(), uuid.New(), "hi", "")
	require.NoError(t, err)
	assert.True(t, resp.Mock)
}

func TestDeepSeekSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Write([]byte(`{"choices":[{"message":{"content":"upstream answer"}}]}`))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.DeepSeekAPIKey = "secret"
	cfg.DeepSeekAPIURL = server.URL
	svc := NewChatService(testDB(t), cfg)

	resp, err := svc.Ask(context.Background(), uuid.New(), "question", "")
	require.NoError(t, err)
	assert.False(t, resp.Mock)
	assert.Equal(t, "upstream answer", resp.Reply)
}

func TestDeepSeekUnauthorizedSurfacesGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.DeepSeekAPIKey = "bad"
	cfg.DeepSeekAPIURL = server.URL
	svc := NewChatService(testDB(t), cfg)

	_, err := svc.Ask(context.Background(), uuid.New(), "question", "")
	assert.ErrorIs(t, err, ErrUpstreamAuth)
}

func TestDeepSeekServerErrorCarriesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"overloaded"}`))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.DeepSeekAPIKey = "key"
	cfg.DeepSeekAPIURL = server.URL
	svc := NewChatService(testDB(t), cfg)

	_, err := svc.Ask(context.Background(), uuid.New(), "question", "")
	require.Error(t, err)

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusServiceUnavailable, upstream.StatusCode)
	assert.Contains(t, upstream.Body, "overloaded")
}

// Hugging Face failures never surface: the endpoint answers with a mock
// reply instead. DeepSeek failures above DO surface. The asymmetry is
// intentional.
func TestHuggingFaceFailureFallsBackToMock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	server.Close() // closed on purpose: simulate a network-level failure

	cfg := testConfig()
	cfg.HFAPIKey = "key"
	cfg.HFAPIURL = server.URL
	svc := NewChatService(testDB(t), cfg)

	resp, err := svc.Ask(context.Background(), uuid.New(), "question", "")
	require.NoError(t, err)
	assert.True(t, resp.Mock)
}

func TestHuggingFaceNon2xxFallsBackToMock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.HFAPIKey = "key"
	cfg.HFAPIURL = server.URL
	svc := NewChatService(testDB(t), cfg)

	resp, err := svc.Ask(context.Background(), uuid.New(), "question", "")
	require.NoError(t, err)
	assert.True(t, resp.Mock)
}

func TestHuggingFaceSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"generated_text":"hf answer"}]`))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.HFAPIKey = "key"
	cfg.HFAPIURL = server.URL
	svc := NewChatService(testDB(t), cfg)

	resp, err := svc.Ask(context.Background(), uuid.New(), "question", "")
	require.NoError(t, err)
	assert.False(t, resp.Mock)
	assert.Equal(t, "hf answer", resp.Reply)
}

func TestDeepSeekConfiguredIgnoresHuggingFace(t *testing.T) {
	hfCalled := false
	hf := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hfCalled = true
	}))
	defer hf.Close()
	ds := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ds.Close()

	cfg := testConfig()
	cfg.DeepSeekAPIKey = "key"
	cfg.DeepSeekAPIURL = ds.URL
	cfg.HFAPIKey = "key"
	cfg.HFAPIURL = hf.URL
	svc := NewChatService(testDB(t), cfg)

	// DeepSeek fails, but the service must NOT fall through to HF.
	_, err := svc.Ask(context.Background(), uuid.New(), "question", "")
	require.Error(t, err)
	assert.False(t, hfCalled)
}

func TestAskRecordsHistory(t *testing.T) {
	db := testDB(t)
	svc := NewChatService(db, testConfig())
	userID := uuid.New()

	_, err := svc.Ask(context.Background(), userID, "remember me", "")
	require.NoError(t, err)

	rows, err := svc.History(userID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "remember me", rows[0].UserMessage)
	assert.NotEmpty(t, rows[0].AIResponse)
}

func TestAnalyzeImageValidation(t *testing.T) {
	svc := NewChatService(testDB(t), testConfig())
	ctx := context.Background()

	t.Run("missing image", func(t *testing.T) {
		_, err := svc.AnalyzeImage(ctx, uuid.New(), "", "image/jpeg", nil)
		assert.ErrorIs(t, err, ErrImageRequired)
	})

	t.Run("oversized image", func(t *testing.T) {
		big := make([]byte, maxAnalysisImageSize+1)
		_, err := svc.AnalyzeImage(ctx, uuid.New(), "", "image/jpeg", big)
		assert.ErrorIs(t, err, ErrAnalysisTooLarge)
	})

	t.Run("non-image upload", func(t *testing.T) {
		_, err := svc.AnalyzeImage(ctx, uuid.New(), "", "application/pdf", []byte("%PDF"))
		assert.ErrorIs(t, err, ErrNotAnImage)
	})
}

func TestAnalyzeImageWithoutKeyReturnsMock(t *testing.T) {
	db := testDB(t)
	svc := NewChatService(db, testConfig())
	userID := uuid.New()

	resp, err := svc.AnalyzeImage(context.Background(), userID, "what is this spot", "image/png", []byte{0x89, 0x50})
	require.NoError(t, err)
	assert.True(t, resp.Mock)

	rows, err := svc.History(userID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "[image] what is this spot", rows[0].UserMessage)
}

func TestAnalyzeImageSendsVisionRequest(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"choices":[{"message":{"content":"leaf rust, high confidence"}}]}`))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.DeepSeekAPIKey = "key"
	cfg.DeepSeekAPIURL = server.URL
	cfg.DeepSeekVisionModel = "vision-model"
	svc := NewChatService(testDB(t), cfg)

	resp, err := svc.AnalyzeImage(context.Background(), uuid.New(), "", "image/jpeg", []byte{0xFF, 0xD8})
	require.NoError(t, err)
	assert.Equal(t, "leaf rust, high confidence", resp.Reply)
	assert.False(t, resp.Mock)

	assert.Equal(t, "vision-model", gotBody["model"])
	raw, err := json.Marshal(gotBody["messages"])
	require.NoError(t, err)
	assert.Contains(t, string(raw), "data:image/jpeg;base64,")
	assert.Contains(t, string(raw), "image_url")
}

func TestAnalyzeImageUnauthorizedSurfacesGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.DeepSeekAPIKey = "bad"
	cfg.DeepSeekAPIURL = server.URL
	svc := NewChatService(testDB(t), cfg)

	_, err := svc.AnalyzeImage(context.Background(), uuid.New(), "", "image/jpeg", []byte{0xFF, 0xD8})
	assert.ErrorIs(t, err, ErrUpstreamAuth)
}

func TestUnparseableBodyIsReturnedRaw(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"a":{"b":[1,2]}}`))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.DeepSeekAPIKey = "key"
	cfg.DeepSeekAPIURL = server.URL
	svc := NewChatService(testDB(t), cfg)

	// No textual leaf anywhere: the raw JSON comes back as the reply.
	resp, err := svc.Ask(context.Background(), uuid.New(), "question", "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":{"b":[1,2]}}`, resp.Reply)
}
