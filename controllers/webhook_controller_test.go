package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func newWebhookRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	bot := NewBotController(&fakeSender{}, nil, nil, zerolog.Nop())
	ctrl := NewWebhookController(context.Background(), bot, zerolog.Nop())

	router := gin.New()
	router.GET("/healthz", ctrl.Healthz)
	router.POST("/webhook", ctrl.HandleUpdate)
	return router
}

func TestWebhookAcknowledgesUpdate(t *testing.T) {
	router := newWebhookRouter()

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{"update_id": 7}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestWebhookRejectsMalformedBody(t *testing.T) {
	router := newWebhookRouter()

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if !strings.Contains(w.Body.String(), "invalid update") {
		t.Errorf("body = %q, want error payload", w.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	router := newWebhookRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "ok") {
		t.Errorf("body = %q, want ok status", w.Body.String())
	}
}
