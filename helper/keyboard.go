package helper

import (
	"strconv"

	"movie-bot-backend/models"
	"movie-bot-backend/telegram"
)

// Callback data prefixes carried by the inline action buttons.
const (
	CallbackFavPrefix    = "fav_"
	CallbackRemovePrefix = "remove_"
	CallbackViewPrefix   = "view_"
)

// favoritesShown caps how many favorite buttons one /favorites reply
// carries.
const favoritesShown = 10

// DetailKeyboard is the action keyboard under a movie detail view. It has
// exactly one favorites action, Save or Remove depending on where the view
// was opened from, followed by the fixed channel rows.
func DetailKeyboard(movieID int, fromFavorites bool) *telegram.InlineKeyboardMarkup {
	id := strconv.Itoa(movieID)

	action := telegram.InlineKeyboardButton{
		Text:         "❤️ Sᴀᴠᴇ Tᴏ Fᴀᴠᴏʀɪᴛᴇꜱ",
		CallbackData: CallbackFavPrefix + id,
	}
	if fromFavorites {
		action = telegram.InlineKeyboardButton{
			Text:         "❌ Rᴇᴍᴏᴠᴇ Fʀᴏᴍ Fᴀᴠᴏʀɪᴛᴇꜱ",
			CallbackData: CallbackRemovePrefix + id,
		}
	}

	return &telegram.InlineKeyboardMarkup{InlineKeyboard: [][]telegram.InlineKeyboardButton{
		{action},
		{{Text: "📢 Jᴏɪɴ Mᴀɪɴ Cʜᴀɴɴᴇʟ", URL: "https://t.me/Freenethubz"}},
		{{Text: "📢 Cʀᴇᴀᴛᴏʀ Cʜᴀɴɴᴇʟ", URL: "https://t.me/Megahubbots"}},
	}}
}

// StartKeyboard is the join-channel keyboard under the /start help text.
func StartKeyboard() *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: [][]telegram.InlineKeyboardButton{
		{{Text: "📢 Jᴏɪɴ Mᴀɪɴ Cʜᴀɴɴᴇʟ", URL: "https://t.me/Freenethubz"}},
		{{Text: "📢 Jᴏɪɴ Bᴀᴄᴋᴜᴘ Cʜᴀɴɴᴇʟ", URL: "https://t.me/Freenethubchannel"}},
		{{Text: "📢 Jᴏɪɴ Bᴏᴛ Hᴇʟᴘ", URL: "https://t.me/Megahubbots"}},
		{{Text: "📢 Jᴏɪɴ Wʜᴀꜱᴛᴀᴘᴘ Cʜᴀɴɴᴇʟ", URL: "https://whatsapp.com/channel/0029VaDnY2y0rGiPV41aSX0l"}},
		{{Text: "📢 Sᴜʙꜱᴄʀɪʙᴇ Oᴜʀ Yᴏᴜᴛᴜʙᴇ", URL: "https://youtube.com/@freenethubtech?si=82p5899ranDoE-hB"}},
	}}
}

// ContactKeyboard is the admin contact button under /contactus.
func ContactKeyboard() *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: [][]telegram.InlineKeyboardButton{
		{{Text: "📩 Mᴇꜱꜱᴀɢᴇ Aᴅᴍɪɴ", URL: "https://t.me/Silando"}},
	}}
}

// FavoritesKeyboard lists one view button per saved movie, at most ten.
// It returns the keyboard and how many favorites it shows.
func FavoritesKeyboard(favorites []models.Favorite) (*telegram.InlineKeyboardMarkup, int) {
	shown := favorites
	if len(shown) > favoritesShown {
		shown = shown[:favoritesShown]
	}

	rows := make([][]telegram.InlineKeyboardButton, 0, len(shown))
	for _, f := range shown {
		rows = append(rows, []telegram.InlineKeyboardButton{{
			Text:         "🎬 " + f.MovieTitle,
			CallbackData: CallbackViewPrefix + strconv.Itoa(f.MovieID),
		}})
	}
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: rows}, len(shown)
}
