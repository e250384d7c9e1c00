package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient("TEST-TOKEN", zerolog.Nop())
	client.baseURL = srv.URL
	return client
}

func TestSendMessageEncodesRequest(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		fmt.Fprint(w, `{"ok": true, "result": {}}`)
	}))

	keyboard := &InlineKeyboardMarkup{InlineKeyboard: [][]InlineKeyboardButton{
		{{Text: "Open", URL: "https://example.com"}},
	}}
	if err := client.SendMessage(context.Background(), 12345, "hello", keyboard); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	if gotPath != "/botTEST-TOKEN/sendMessage" {
		t.Errorf("path = %q, want /botTEST-TOKEN/sendMessage", gotPath)
	}
	if gotBody["chat_id"] != float64(12345) {
		t.Errorf("chat_id = %v, want 12345", gotBody["chat_id"])
	}
	if gotBody["text"] != "hello" {
		t.Errorf("text = %v, want hello", gotBody["text"])
	}
	if gotBody["parse_mode"] != "Markdown" {
		t.Errorf("parse_mode = %v, want Markdown", gotBody["parse_mode"])
	}
	if gotBody["reply_markup"] == nil {
		t.Error("reply_markup missing from request")
	}
}

func TestCallSurfacesAPIError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"ok": false, "error_code": 429, "description": "Too Many Requests: retry after 7", "parameters": {"retry_after": 7}}`)
	}))

	err := client.SendMessage(context.Background(), 1, "hi", nil)
	if err == nil {
		t.Fatal("SendMessage succeeded, want API error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error %T, want *APIError", err)
	}
	if apiErr.Code != 429 {
		t.Errorf("Code = %d, want 429", apiErr.Code)
	}
	if apiErr.RetryAfter != 7 {
		t.Errorf("RetryAfter = %d, want 7", apiErr.RetryAfter)
	}
	if apiErr.Method != "sendMessage" {
		t.Errorf("Method = %q, want sendMessage", apiErr.Method)
	}
}

func TestGetUpdatesDecodesResult(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req["offset"] != float64(7) {
			t.Errorf("offset = %v, want 7", req["offset"])
		}
		if req["timeout"] != float64(pollTimeout) {
			t.Errorf("timeout = %v, want %d", req["timeout"], pollTimeout)
		}
		fmt.Fprint(w, `{"ok": true, "result": [
			{"update_id": 7, "message": {"message_id": 1, "chat": {"id": 99}, "text": "/start"}},
			{"update_id": 8, "callback_query": {"id": "cb1", "from": {"id": 99}, "data": "fav_19995"}}
		]}`)
	}))

	updates, err := client.GetUpdates(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetUpdates: %v", err)
	}
	if len(updates) != 2 {
		t.Fatalf("len(updates) = %d, want 2", len(updates))
	}
	if updates[0].Message == nil || updates[0].Message.Text != "/start" {
		t.Errorf("updates[0].Message = %+v", updates[0].Message)
	}
	if updates[1].CallbackQuery == nil || updates[1].CallbackQuery.Data != "fav_19995" {
		t.Errorf("updates[1].CallbackQuery = %+v", updates[1].CallbackQuery)
	}
}

func TestAnswerInlineQueryNeverSendsNullResults(t *testing.T) {
	var gotBody map[string]json.RawMessage

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		fmt.Fprint(w, `{"ok": true, "result": true}`)
	}))

	if err := client.AnswerInlineQuery(context.Background(), "iq1", nil); err != nil {
		t.Fatalf("AnswerInlineQuery: %v", err)
	}
	if string(gotBody["results"]) != "[]" {
		t.Errorf("results = %s, want []", gotBody["results"])
	}
}

func TestSetWebhookSendsSecretToken(t *testing.T) {
	var gotBody map[string]interface{}

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		fmt.Fprint(w, `{"ok": true, "result": true}`)
	}))

	if err := client.SetWebhook(context.Background(), "https://bot.example.com/webhook", "s3cret"); err != nil {
		t.Fatalf("SetWebhook: %v", err)
	}
	if gotBody["url"] != "https://bot.example.com/webhook" {
		t.Errorf("url = %v", gotBody["url"])
	}
	if gotBody["secret_token"] != "s3cret" {
		t.Errorf("secret_token = %v, want s3cret", gotBody["secret_token"])
	}
}
