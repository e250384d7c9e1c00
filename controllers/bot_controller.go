package controllers

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"movie-bot-backend/helper"
	"movie-bot-backend/models"
	"movie-bot-backend/services"
	"movie-bot-backend/telegram"
)

// broadcastPause spaces out fan-out sends to stay under the Bot API rate
// limit.
const broadcastPause = 100 * time.Millisecond

// Sender is the slice of the Telegram client the controller sends through.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string, keyboard *telegram.InlineKeyboardMarkup) error
	SendPhoto(ctx context.Context, chatID int64, photoURL, caption string, keyboard *telegram.InlineKeyboardMarkup) error
	EditMessageReplyMarkup(ctx context.Context, chatID, messageID int64, keyboard *telegram.InlineKeyboardMarkup) error
	AnswerCallbackQuery(ctx context.Context, callbackQueryID, text string, showAlert bool) error
	AnswerInlineQuery(ctx context.Context, inlineQueryID string, results []telegram.InlineQueryResultArticle) error
}

// BotController routes inbound updates to their handlers: commands,
// callback buttons and inline queries. Handler failures are absorbed into
// logged error replies; an update never takes the process down.
type BotController struct {
	bot    Sender
	movies *services.MovieService
	users  *services.UserService
	log    zerolog.Logger
	pause  time.Duration
}

func NewBotController(bot Sender, movies *services.MovieService, users *services.UserService, log zerolog.Logger) *BotController {
	return &BotController{
		bot:    bot,
		movies: movies,
		users:  users,
		log:    log.With().Str("component", "bot").Logger(),
		pause:  broadcastPause,
	}
}

// HandleUpdate dispatches one update. It is safe to call from concurrent
// goroutines, one per update.
func (c *BotController) HandleUpdate(ctx context.Context, upd telegram.Update) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Interface("panic", r).Int64("update_id", upd.UpdateID).Msg("Update handler panicked")
			if upd.Message != nil {
				c.reply(ctx, upd.Message.Chat.ID, helper.MsgGenericError, nil)
			}
		}
	}()

	switch {
	case upd.Message != nil && upd.Message.Text != "":
		c.handleMessage(ctx, upd.Message)
	case upd.CallbackQuery != nil:
		c.handleCallback(ctx, upd.CallbackQuery)
	case upd.InlineQuery != nil:
		c.handleInlineQuery(ctx, upd.InlineQuery)
	}
}

func (c *BotController) handleMessage(ctx context.Context, msg *telegram.Message) {
	text := strings.TrimSpace(msg.Text)
	if !strings.HasPrefix(text, "/") {
		// Plain text has no handler registered; the bot only answers
		// commands, buttons and inline queries.
		return
	}

	command, args := splitCommand(text)
	if msg.From != nil {
		c.users.EnsureUser(ctx, userFromTelegram(msg.From))
	}

	switch command {
	case "/start", "/help":
		c.reply(ctx, msg.Chat.ID, helper.HelpText, helper.StartKeyboard())
	case "/contactus":
		c.reply(ctx, msg.Chat.ID, helper.ContactText, helper.ContactKeyboard())
	case "/search":
		c.cmdSearch(ctx, msg, args)
	case "/id":
		c.cmdSearchByID(ctx, msg, args)
	case "/trending":
		c.cmdTrending(ctx, msg)
	case "/popular":
		c.cmdPopular(ctx, msg)
	case "/favorites":
		c.cmdFavorites(ctx, msg)
	case "/stats":
		c.cmdStats(ctx, msg)
	case "/broadcast":
		c.cmdBroadcast(ctx, msg, args)
	}
}

// splitCommand separates "/cmd@botname rest of args" into the lowercased
// command and its trimmed argument string.
func splitCommand(text string) (command, args string) {
	command = text
	if i := strings.IndexAny(text, " \n"); i >= 0 {
		command, args = text[:i], strings.TrimSpace(text[i+1:])
	}
	if i := strings.Index(command, "@"); i >= 0 {
		command = command[:i]
	}
	return strings.ToLower(command), args
}

func userFromTelegram(u *telegram.User) *models.User {
	return &models.User{
		UserID:    u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func (c *BotController) cmdSearch(ctx context.Context, msg *telegram.Message, args string) {
	if args == "" {
		c.reply(ctx, msg.Chat.ID, helper.MsgSearchUsage, nil)
		return
	}

	c.log.Info().Str("query", args).Int64("chat_id", msg.Chat.ID).Msg("Received search query")
	rec := c.movies.Search(ctx, args)
	c.logSearch(ctx, msg, args, rec)
	c.sendMovieView(ctx, msg.Chat.ID, rec, false)
}

func (c *BotController) cmdSearchByID(ctx context.Context, msg *telegram.Message, args string) {
	movieID, err := strconv.Atoi(args)
	if err != nil || movieID <= 0 {
		c.reply(ctx, msg.Chat.ID, helper.MsgIDUsage, nil)
		return
	}

	c.log.Info().Int("movie_id", movieID).Int64("chat_id", msg.Chat.ID).Msg("Received ID search")
	rec := c.movies.GetByID(ctx, movieID)
	c.logSearch(ctx, msg, "ID:"+args, rec)
	c.sendMovieView(ctx, msg.Chat.ID, rec, false)
}

// logSearch records the query with the resolved movie id, nil when nothing
// matched.
func (c *BotController) logSearch(ctx context.Context, msg *telegram.Message, query string, rec *models.MovieRecord) {
	if msg.From == nil {
		return
	}
	var movieID *int
	if rec != nil {
		movieID = &rec.ID
	}
	c.users.LogSearch(ctx, msg.From.ID, query, movieID)
}

func (c *BotController) cmdTrending(ctx context.Context, msg *telegram.Message) {
	records := c.movies.Trending(ctx)
	if len(records) == 0 {
		c.reply(ctx, msg.Chat.ID, helper.MsgTrendingUnavailable, nil)
		return
	}
	c.reply(ctx, msg.Chat.ID, helper.FormatMovieList(records, helper.TrendingHeading), nil)
}

func (c *BotController) cmdPopular(ctx context.Context, msg *telegram.Message) {
	records := c.movies.Popular(ctx)
	if len(records) == 0 {
		c.reply(ctx, msg.Chat.ID, helper.MsgPopularUnavailable, nil)
		return
	}
	c.reply(ctx, msg.Chat.ID, helper.FormatMovieList(records, helper.PopularHeading), nil)
}

func (c *BotController) cmdFavorites(ctx context.Context, msg *telegram.Message) {
	if msg.From == nil {
		return
	}

	favorites, err := c.users.Favorites(ctx, msg.From.ID)
	if err != nil {
		c.log.Error().Err(err).Int64("user_id", msg.From.ID).Msg("Failed to list favorites")
		c.reply(ctx, msg.Chat.ID, helper.MsgFavoritesError, nil)
		return
	}
	if len(favorites) == 0 {
		c.reply(ctx, msg.Chat.ID, helper.MsgNoFavorites, nil)
		return
	}

	keyboard, shown := helper.FavoritesKeyboard(favorites)
	c.reply(ctx, msg.Chat.ID, helper.FormatFavoritesText(len(favorites), shown), keyboard)
}

func (c *BotController) cmdStats(ctx context.Context, msg *telegram.Message) {
	if msg.From == nil || !c.users.IsAdmin(ctx, msg.From.ID) {
		c.reply(ctx, msg.Chat.ID, helper.MsgStatsAdminOnly, nil)
		return
	}

	stats, err := c.users.Stats(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("Failed to assemble stats")
		c.reply(ctx, msg.Chat.ID, helper.MsgStatsError, nil)
		return
	}

	for i, m := range stats.TopMovies {
		if rec := c.movies.GetByID(ctx, m.MovieID); rec != nil {
			stats.TopMovies[i].Title = rec.Title
		}
	}

	c.reply(ctx, msg.Chat.ID, helper.FormatStats(stats), nil)
}

func (c *BotController) cmdBroadcast(ctx context.Context, msg *telegram.Message, args string) {
	if msg.From == nil || !c.users.IsAdmin(ctx, msg.From.ID) {
		c.reply(ctx, msg.Chat.ID, helper.MsgBroadcastAdminOnly, nil)
		return
	}
	if args == "" {
		c.reply(ctx, msg.Chat.ID, helper.MsgBroadcastUsage, nil)
		return
	}

	ids, err := c.users.AllUserIDs(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("Failed to load broadcast recipients")
		c.reply(ctx, msg.Chat.ID, helper.MsgBroadcastError, nil)
		return
	}

	c.reply(ctx, msg.Chat.ID, helper.BroadcastStarted(len(ids)), nil)

	announcement := helper.BroadcastAnnouncement(args)
	var success, failures int
	for _, userID := range ids {
		if ctx.Err() != nil {
			break
		}
		if err := c.bot.SendMessage(ctx, userID, announcement, nil); err != nil {
			c.log.Warn().Err(err).Int64("user_id", userID).Msg("Failed to send broadcast to user")
			failures++
			continue
		}
		success++
		time.Sleep(c.pause)
	}

	c.log.Info().Int("success", success).Int("failures", failures).Msg("Broadcast completed")
	c.reply(ctx, msg.Chat.ID, helper.BroadcastSummary(success, failures), nil)
}

func (c *BotController) handleCallback(ctx context.Context, cb *telegram.CallbackQuery) {
	data := cb.Data
	switch {
	case strings.HasPrefix(data, helper.CallbackFavPrefix):
		c.callbackAddFavorite(ctx, cb, strings.TrimPrefix(data, helper.CallbackFavPrefix))
	case strings.HasPrefix(data, helper.CallbackRemovePrefix):
		c.callbackRemoveFavorite(ctx, cb, strings.TrimPrefix(data, helper.CallbackRemovePrefix))
	case strings.HasPrefix(data, helper.CallbackViewPrefix):
		c.callbackViewFavorite(ctx, cb, strings.TrimPrefix(data, helper.CallbackViewPrefix))
	}
}

func (c *BotController) callbackAddFavorite(ctx context.Context, cb *telegram.CallbackQuery, rawID string) {
	movieID, err := strconv.Atoi(rawID)
	if err != nil {
		c.answerCallback(ctx, cb.ID, "Movie Not Found!", true)
		return
	}

	rec := c.movies.GetByID(ctx, movieID)
	if rec == nil {
		c.answerCallback(ctx, cb.ID, "Movie Not Found!", true)
		return
	}

	added, err := c.users.AddFavorite(ctx, cb.From.ID, rec.ID, rec.Title)
	if err != nil {
		c.log.Error().Err(err).Int64("user_id", cb.From.ID).Int("movie_id", rec.ID).Msg("Failed to add favorite")
		c.answerCallback(ctx, cb.ID, "❌ Error saving to favorites", true)
		return
	}
	if added {
		c.answerCallback(ctx, cb.ID, fmt.Sprintf("❤️ %s added to favorites!", rec.Title), true)
	} else {
		c.answerCallback(ctx, cb.ID, fmt.Sprintf("❤️ %s is already in favorites!", rec.Title), true)
	}
}

func (c *BotController) callbackRemoveFavorite(ctx context.Context, cb *telegram.CallbackQuery, rawID string) {
	movieID, err := strconv.Atoi(rawID)
	if err != nil {
		c.answerCallback(ctx, cb.ID, "Movie Not Found!", true)
		return
	}

	rec := c.movies.GetByID(ctx, movieID)
	if rec == nil {
		c.answerCallback(ctx, cb.ID, "Movie Not Found!", true)
		return
	}

	removed, err := c.users.RemoveFavorite(ctx, cb.From.ID, rec.ID)
	if err != nil {
		c.log.Error().Err(err).Int64("user_id", cb.From.ID).Int("movie_id", rec.ID).Msg("Failed to remove favorite")
		c.answerCallback(ctx, cb.ID, "❌ Error removing from favorites", true)
		return
	}
	if !removed {
		c.answerCallback(ctx, cb.ID, fmt.Sprintf("%s wasn't in your favorites!", rec.Title), true)
		return
	}

	// Swap the message keyboard back to the Save action.
	if cb.Message != nil {
		if err := c.bot.EditMessageReplyMarkup(ctx, cb.Message.Chat.ID, cb.Message.MessageID, helper.DetailKeyboard(rec.ID, false)); err != nil {
			c.log.Warn().Err(err).Msg("Failed to edit reply markup")
		}
	}
	c.answerCallback(ctx, cb.ID, fmt.Sprintf("❌ %s removed from favorites!", rec.Title), true)
}

func (c *BotController) callbackViewFavorite(ctx context.Context, cb *telegram.CallbackQuery, rawID string) {
	movieID, err := strconv.Atoi(rawID)
	if err != nil {
		c.answerCallback(ctx, cb.ID, "Mᴏᴠɪᴇ Nᴏᴛ Fᴏᴜɴᴅ!", false)
		return
	}

	rec := c.movies.GetByID(ctx, movieID)
	if rec == nil {
		c.answerCallback(ctx, cb.ID, "Mᴏᴠɪᴇ Nᴏᴛ Fᴏᴜɴᴅ!", false)
		return
	}

	c.answerCallback(ctx, cb.ID, "", false)

	chatID := cb.From.ID
	if cb.Message != nil {
		chatID = cb.Message.Chat.ID
	}
	c.sendMovieView(ctx, chatID, rec, true)
}

func (c *BotController) handleInlineQuery(ctx context.Context, iq *telegram.InlineQuery) {
	query := strings.TrimSpace(iq.Query)
	if query == "" {
		return
	}

	results := c.movies.InlineResults(ctx, query)
	if len(results) == 0 {
		return
	}

	articles := make([]telegram.InlineQueryResultArticle, 0, len(results))
	for _, r := range results {
		if r.ID == 0 {
			continue
		}
		articles = append(articles, helper.FormatInlineArticle(r))
	}

	if err := c.bot.AnswerInlineQuery(ctx, iq.ID, articles); err != nil {
		c.log.Error().Err(err).Str("query", query).Msg("Failed to answer inline query")
	}
}

// sendMovieView delivers the detail view: poster with caption when a
// poster exists, text fallback when the photo send is rejected.
func (c *BotController) sendMovieView(ctx context.Context, chatID int64, rec *models.MovieRecord, fromFavorites bool) {
	if rec == nil {
		c.reply(ctx, chatID, helper.MsgMovieNotFound, nil)
		return
	}

	text := helper.FormatMovieMessage(rec)
	keyboard := helper.DetailKeyboard(rec.ID, fromFavorites)

	if rec.PosterURL != "" {
		err := c.bot.SendPhoto(ctx, chatID, rec.PosterURL, text, keyboard)
		if err == nil {
			return
		}
		c.log.Warn().Err(err).Int("movie_id", rec.ID).Msg("Failed to send photo, falling back to text")
	}

	c.reply(ctx, chatID, text, keyboard)
}

func (c *BotController) reply(ctx context.Context, chatID int64, text string, keyboard *telegram.InlineKeyboardMarkup) {
	if err := c.bot.SendMessage(ctx, chatID, text, keyboard); err != nil {
		c.log.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to send reply")
	}
}

func (c *BotController) answerCallback(ctx context.Context, callbackID, text string, showAlert bool) {
	if err := c.bot.AnswerCallbackQuery(ctx, callbackID, text, showAlert); err != nil {
		c.log.Warn().Err(err).Msg("Failed to answer callback query")
	}
}
