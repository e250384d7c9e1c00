package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultAPIBaseURL = "https://api.telegram.org"

	// pollTimeout is the long-poll hold passed to getUpdates. The HTTP
	// client timeout must stay above it or every idle poll would abort.
	pollTimeout = 30
)

var allowedUpdates = []string{"message", "callback_query", "inline_query"}

// APIError is a Bot API method failure, i.e. an ok=false envelope.
type APIError struct {
	Method      string
	Code        int
	Description string
	RetryAfter  int
}

func (e *APIError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("telegram %s: %d %s (retry after %ds)", e.Method, e.Code, e.Description, e.RetryAfter)
	}
	return fmt.Sprintf("telegram %s: %d %s", e.Method, e.Code, e.Description)
}

// Client is a Bot API client covering the methods the bot uses. All
// requests are JSON POSTs; messages are sent with Markdown parse mode.
type Client struct {
	token   string
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

func NewClient(token string, log zerolog.Logger) *Client {
	return &Client{
		token:   token,
		baseURL: defaultAPIBaseURL,
		client: &http.Client{
			Timeout: (pollTimeout + 10) * time.Second,
		},
		log: log.With().Str("component", "telegram").Logger(),
	}
}

type sendMessageRequest struct {
	ChatID                int64                 `json:"chat_id"`
	Text                  string                `json:"text"`
	ParseMode             string                `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool                  `json:"disable_web_page_preview,omitempty"`
	ReplyMarkup           *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

type sendPhotoRequest struct {
	ChatID      int64                 `json:"chat_id"`
	Photo       string                `json:"photo"`
	Caption     string                `json:"caption,omitempty"`
	ParseMode   string                `json:"parse_mode,omitempty"`
	ReplyMarkup *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

type editMessageReplyMarkupRequest struct {
	ChatID      int64                 `json:"chat_id"`
	MessageID   int64                 `json:"message_id"`
	ReplyMarkup *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

type answerCallbackQueryRequest struct {
	CallbackQueryID string `json:"callback_query_id"`
	Text            string `json:"text,omitempty"`
	ShowAlert       bool   `json:"show_alert,omitempty"`
}

type answerInlineQueryRequest struct {
	InlineQueryID string                     `json:"inline_query_id"`
	Results       []InlineQueryResultArticle `json:"results"`
}

type getUpdatesRequest struct {
	Offset         int64    `json:"offset,omitempty"`
	Timeout        int      `json:"timeout,omitempty"`
	AllowedUpdates []string `json:"allowed_updates,omitempty"`
}

type setWebhookRequest struct {
	URL            string   `json:"url"`
	SecretToken    string   `json:"secret_token,omitempty"`
	AllowedUpdates []string `json:"allowed_updates,omitempty"`
}

type deleteWebhookRequest struct {
	DropPendingUpdates bool `json:"drop_pending_updates,omitempty"`
}

// SendMessage sends a Markdown text message, optionally with an inline
// keyboard attached.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, keyboard *InlineKeyboardMarkup) error {
	return c.call(ctx, "sendMessage", sendMessageRequest{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   "Markdown",
		ReplyMarkup: keyboard,
	}, nil)
}

// SendPhoto sends a photo by URL with a Markdown caption. Callers fall
// back to SendMessage when the photo is rejected.
func (c *Client) SendPhoto(ctx context.Context, chatID int64, photoURL, caption string, keyboard *InlineKeyboardMarkup) error {
	return c.call(ctx, "sendPhoto", sendPhotoRequest{
		ChatID:      chatID,
		Photo:       photoURL,
		Caption:     caption,
		ParseMode:   "Markdown",
		ReplyMarkup: keyboard,
	}, nil)
}

// EditMessageReplyMarkup swaps the inline keyboard on an existing message.
func (c *Client) EditMessageReplyMarkup(ctx context.Context, chatID, messageID int64, keyboard *InlineKeyboardMarkup) error {
	return c.call(ctx, "editMessageReplyMarkup", editMessageReplyMarkupRequest{
		ChatID:      chatID,
		MessageID:   messageID,
		ReplyMarkup: keyboard,
	}, nil)
}

// AnswerCallbackQuery acknowledges a button tap, optionally popping an
// alert box with the given text.
func (c *Client) AnswerCallbackQuery(ctx context.Context, callbackQueryID, text string, showAlert bool) error {
	return c.call(ctx, "answerCallbackQuery", answerCallbackQueryRequest{
		CallbackQueryID: callbackQueryID,
		Text:            text,
		ShowAlert:       showAlert,
	}, nil)
}

// AnswerInlineQuery replies to an inline query with article results.
func (c *Client) AnswerInlineQuery(ctx context.Context, inlineQueryID string, results []InlineQueryResultArticle) error {
	if results == nil {
		results = []InlineQueryResultArticle{}
	}
	return c.call(ctx, "answerInlineQuery", answerInlineQueryRequest{
		InlineQueryID: inlineQueryID,
		Results:       results,
	}, nil)
}

// GetUpdates long-polls for the next batch of updates at or after offset.
func (c *Client) GetUpdates(ctx context.Context, offset int64) ([]Update, error) {
	var updates []Update
	err := c.call(ctx, "getUpdates", getUpdatesRequest{
		Offset:         offset,
		Timeout:        pollTimeout,
		AllowedUpdates: allowedUpdates,
	}, &updates)
	if err != nil {
		return nil, err
	}
	return updates, nil
}

// SetWebhook registers url as the update delivery endpoint. When secret is
// non-empty Telegram echoes it back in the X-Telegram-Bot-Api-Secret-Token
// header of every delivery.
func (c *Client) SetWebhook(ctx context.Context, url, secret string) error {
	return c.call(ctx, "setWebhook", setWebhookRequest{
		URL:            url,
		SecretToken:    secret,
		AllowedUpdates: allowedUpdates,
	}, nil)
}

// DeleteWebhook unregisters any webhook so getUpdates polling can take
// over.
func (c *Client) DeleteWebhook(ctx context.Context, dropPendingUpdates bool) error {
	return c.call(ctx, "deleteWebhook", deleteWebhookRequest{
		DropPendingUpdates: dropPendingUpdates,
	}, nil)
}

// GetMe fetches the bot's own account, used as a startup credential check.
func (c *Client) GetMe(ctx context.Context) (*User, error) {
	var me User
	if err := c.call(ctx, "getMe", struct{}{}, &me); err != nil {
		return nil, err
	}
	return &me, nil
}

// call POSTs one Bot API method and decodes the response envelope. A
// transport failure or an ok=false envelope both come back as errors; the
// latter is an *APIError.
func (c *Client) call(ctx context.Context, method string, payload interface{}, result interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("telegram %s: encode request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/bot"+c.token+"/"+method, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram %s: build request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	var envelope APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("telegram %s: decode response: %w", method, err)
	}

	if !envelope.OK {
		apiErr := &APIError{
			Method:      method,
			Code:        envelope.ErrorCode,
			Description: envelope.Description,
		}
		if envelope.Parameters != nil {
			apiErr.RetryAfter = envelope.Parameters.RetryAfter
		}
		c.log.Debug().Str("method", method).Int("code", apiErr.Code).Str("description", apiErr.Description).Msg("Bot API call rejected")
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return fmt.Errorf("telegram %s: decode result: %w", method, err)
		}
	}
	return nil
}
