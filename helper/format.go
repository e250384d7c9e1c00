package helper

import (
	"fmt"
	"strconv"
	"strings"

	"movie-bot-backend/models"
	"movie-bot-backend/telegram"
)

// User-facing reply texts. The stylized unicode is part of the bot's
// established look and is kept verbatim.
const (
	MsgMovieNotFound = "❌ Mᴏᴠɪᴇ Nᴏᴛ Fᴏᴜɴᴅ. Pʟᴇᴀꜱᴇ Cʜᴇᴄᴋ Tʜᴇ Nᴀᴍᴇ Oʀ Iᴅ Aɴᴅ Tʀʏ Aɢᴀɪɴ."

	MsgSearchUsage = "Pʟᴇᴀꜱᴇ Pʀᴏᴠɪᴅᴇ ᴀ Mᴏᴠɪᴇ Nᴀᴍᴇ. Exᴀᴍᴘʟᴇ:\n`/search Avatar 2009`"
	MsgIDUsage     = "Pʟᴇᴀꜱᴇ Pʀᴏᴠɪᴅᴇ ᴀ Vᴀʟɪᴅ Tᴍᴅʙ Iᴅ. Exᴀᴍᴘʟᴇ:\n`/id 27205`"

	MsgGenericError        = "❌ Aɴ Eʀʀᴏʀ Oᴄᴄᴜʀʀᴇᴅ Wʜɪʟᴇ Pʀᴏᴄᴇꜱꜱɪɴɢ Yᴏᴜʀ RᴇQᴜᴇꜱᴛ. Pʟᴇᴀꜱᴇ Tʀʏ Aɢᴀɪɴ."
	MsgTrendingUnavailable = "❌ Cᴏᴜʟᴅ Nᴏᴛ Fᴇᴛᴄʜ Tʀᴇɴᴅɪɴɢ Mᴏᴠɪᴇꜱ. Pʟᴇᴀꜱᴇ Tʀʏ Aɢᴀɪɴ Lᴀᴛᴇʀ."
	MsgPopularUnavailable  = "❌ Cᴏᴜʟᴅ Nᴏᴛ Fᴇᴛᴄʜ Pᴏᴘᴜʟᴀʀ Mᴏᴠɪᴇꜱ. Pʟᴇᴀꜱᴇ Tʀʏ Aɢᴀɪɴ Lᴀᴛᴇʀ."

	MsgNoFavorites    = "Yᴏᴜ Hᴀᴠᴇɴ'ᴛ Sᴀᴠᴇᴅ Aɴʏ Fᴀᴠᴏʀɪᴛᴇꜱ Yᴇᴛ. Uꜱᴇ Tʜᴇ ❤️ Bᴜᴛᴛᴏɴ Aꜰᴛᴇʀ Sᴇᴀʀᴄʜɪɴɢ Fᴏʀ Mᴏᴠɪᴇꜱ Tᴏ Sᴀᴠᴇ Tʜᴇᴍ."
	MsgFavoritesError = "❌ Aɴ Eʀʀᴏʀ Oᴄᴄᴜʀʀᴇᴅ Wʜɪʟᴇ Fᴇᴛᴄʜɪɴɢ Yᴏᴜʀ Fᴀᴠᴏʀɪᴛᴇꜱ. Pʟᴇᴀꜱᴇ Tʀʏ Aɢᴀɪɴ."
	MsgStatsError     = "❌ Aɴ Eʀʀᴏʀ Oᴄᴄᴜʀʀᴇᴅ Wʜɪʟᴇ Fᴇᴛᴄʜɪɴɢ Sᴛᴀᴛɪꜱᴛɪᴄꜱ. Pʟᴇᴀꜱᴇ Tʀʏ Aɢᴀɪɴ."
	MsgBroadcastError = "❌ Aɴ Eʀʀᴏʀ Oᴄᴄᴜʀʀᴇᴅ Dᴜʀɪɴɢ Bʀᴏᴀᴅᴄᴀꜱᴛ. Pʟᴇᴀꜱᴇ Tʀʏ Aɢᴀɪɴ."

	MsgStatsAdminOnly     = "❌ This command is for admins only."
	MsgBroadcastAdminOnly = "❌ Tʜɪꜱ Cᴏᴍᴍᴀɴᴅ Iꜱ Fᴏʀ Aᴅᴍɪɴꜱ Oɴʟʏ. Pʟᴇᴀꜱᴇ Dᴏɴ'ᴛ Cʀʏ ."
	MsgBroadcastUsage     = "Pʟᴇᴀꜱᴇ Pʀᴏᴠɪᴅᴇ A Mᴇꜱꜱᴀɢᴇ Tᴏ Bʀᴏᴀᴅᴄᴀꜱᴛ. Exᴀᴍᴘʟᴇ:\n`/broadcast Hello users!`"
)

// List headings passed to FormatMovieList by the trending and popular
// commands.
const (
	TrendingHeading = " ❝🔥 𝐂𝐮𝐫𝐫𝐞𝐧𝐭𝐥𝐲 𝐓𝐫𝐞𝐧𝐝𝐢𝐧𝐠 𝐌𝐨𝐯𝐢𝐞𝐬❞"
	PopularHeading  = "🌟 *❝𝐌𝐨𝐬𝐭 𝐏𝐨𝐩𝐮𝐥𝐚𝐫 𝐌𝐨𝐯𝐢𝐞𝐬❞*"
)

// HelpText is the /start and /help reply.
const HelpText = " ミ★ 𝐓𝐌𝐃𝐁 𝐁𝐨𝐭 𝐇𝐞𝐥𝐩 ★彡\n\n" +
	"I Cᴀɴ Fᴇᴛᴄʜ Mᴏᴠɪᴇ Dᴇᴛᴀɪʟꜱ Fʀᴏᴍ *Tᴍᴅʙ Wᴇʙꜱɪᴛᴇ* Aɴᴅ Mᴏʀᴇ!\n\n" +
	"━━━━━━━━━━━━━━━━━━━━\n" +
	"🔍 𝐒𝐞𝐚𝐫𝐜𝐡 𝐂𝐨𝐦𝐦𝐚𝐧𝐝𝐬:\n" +
	"`/search <movie name> [year]` - Sᴇᴀʀʜ Bʏ Nᴀᴍᴇ\n" +
	"`/id <tmdb_id>` - Sᴇᴀʀᴄʜ Bʏ Tᴍᴅʙ Iᴅ\n" +
	"`/trending` - Cᴜʀʀᴇɴᴛʟʏ Tʀᴇɴᴅɪɴɢ Mᴏᴠɪᴇꜱ\n" +
	"`/popular` - Mᴏꜱᴛ Pᴏᴘᴜʟᴀʀ Mᴏᴠɪᴇꜱ\n\n" +
	"━━━━━━━━━━━━━━━━━━━━\n" +
	"💖 𝐅𝐚𝐯𝐨𝐫𝐢𝐭𝐞 𝐂𝐨𝐦𝐦𝐚𝐧𝐝𝐬:\n" +
	"`/favorites` - Vɪᴇᴡ Yᴏᴜʀ Sᴀᴠᴇᴅ Mᴏᴠɪᴇꜱ\n\n" +
	"━━━━━━━━━━━━━━━━━━━━\n\n" +
	"𒆜 𝐒𝐞𝐚𝐫𝐜𝐡 𝐰𝐢𝐭𝐡 𝐢𝐧𝐥𝐢𝐧𝐞:\n" +
	"*Exᴀᴍᴘʟᴇ*: `@Themoviedatabasee_bot <Movie Name>`\n" +
	"Aꜰᴛᴇʀ ɢᴇᴛᴛɪɴɢ ᴛʜᴇ ᴍᴏᴠɪᴇ ɪᴅ ꜰʀᴏᴍ " +
	"Tʜᴇ Iɴʟɪɴᴇ Sᴇᴀʀᴄʜ *Cᴏᴘʏ Iᴛ* Aɴᴅ *Sᴇᴀʀᴄʜ* Wɪᴛʜ Tʜᴇ Hᴇʟᴘ Oꜰ Tʜᴇ `/id` Cᴏᴍᴍᴀɴᴅ\n\n" +
	"●━━━━━━━━━━━━━━━━━━━━●"

// ContactText is the /contactus reply.
const ContactText = "📞 ★彡( 𝕮𝖔𝖓𝖙𝖆𝖈𝖙 𝖀𝖘 )彡★ 📞\n\n" +
	"📧 Eᴍᴀɪʟ: `freenethubbusiness@gmail.com`\n\n" +
	"Fᴏʀ Aɴʏ Iꜱꜱᴜᴇꜱ, Bᴜꜱɪɴᴇꜱꜱ Dᴇᴀʟꜱ Oʀ IɴQᴜɪʀɪᴇꜱ, Pʟᴇᴀꜱᴇ Rᴇᴀᴄʜ Oᴜᴛ Tᴏ Uꜱ \n\n" +
	"❗ *ONLY FOR BUSINESS AND HELP, DON'T SPAM!*"

// FormatMovieMessage renders a movie record as the Markdown detail view.
// A nil record yields the not-found reply, never a panic.
func FormatMovieMessage(rec *models.MovieRecord) string {
	if rec == nil {
		return MsgMovieNotFound
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🎬 *%s* (%s)\n", rec.Title, rec.Year)
	fmt.Fprintf(&b, "⭐ Rᴀᴛɪɴɢ: %s/10\n", rec.Rating)
	fmt.Fprintf(&b, "⏳ Rᴜɴᴛɪᴍᴇ: %s\n", rec.Runtime)
	fmt.Fprintf(&b, "📌 Gᴇɴʀᴇꜱ: %s\n", rec.Genres)
	fmt.Fprintf(&b, "🌍 Lᴀɴɢᴜᴀɢᴇ: %s\n\n", rec.Language)
	fmt.Fprintf(&b, "📖 *Oᴠᴇʀᴠɪᴇᴡ:*\n%s\n\n", rec.Overview)
	fmt.Fprintf(&b, "🔗 [More Info on TMDB](%s)", rec.TMDBLink)

	if rec.TrailerURL != "" {
		fmt.Fprintf(&b, "\n🎥 [Watch Trailer](%s)", rec.TrailerURL)
	}

	if len(rec.Recommendations) > 0 {
		b.WriteString("\n\n🎥 *ﮩﮩ٨ـﮩﮩYᴏᴜ Mɪɢʜᴛ Aʟꜱᴏ Lɪᴋᴇﮩﮩـ٨ﮩ:*")
		for _, r := range rec.Recommendations {
			fmt.Fprintf(&b, "\n𒆜 [%s (%s)](%s)", r.Title, r.Year, models.MovieURL(r.ID))
		}
	}

	return b.String()
}

// FormatMovieList renders a heading plus one two-line block per movie.
// Nil entries, left behind by failed detail fetches, are skipped.
func FormatMovieList(records []*models.MovieRecord, heading string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n\n", heading)
	for _, rec := range records {
		if rec == nil {
			continue
		}
		fmt.Fprintf(&b, "🎬 [%s (%s)](%s)\n", rec.Title, rec.Year, rec.TMDBLink)
		fmt.Fprintf(&b, "⭐ %s/10 | ⏳ %s\n\n", rec.Rating, rec.Runtime)
	}
	return b.String()
}

// FormatFavoritesText is the body above the favorites keyboard. When more
// favorites exist than the keyboard shows, a count line is appended.
func FormatFavoritesText(total, shown int) string {
	text := "⭐ Yᴏᴜʀ Fᴀᴠᴏʀɪᴛᴇ Mᴏᴠɪᴇꜱ:\n\n"
	if total > shown {
		text += fmt.Sprintf("Sʜᴏᴡɪɴɢ %d Oꜰ %d Fᴀᴠᴏʀɪᴛᴇꜱ\n", shown, total)
	}
	return text
}

// FormatStats renders the admin statistics summary. Rows whose title
// lookup failed fall back to the raw movie id.
func FormatStats(stats *models.BotStats) string {
	var b strings.Builder
	b.WriteString("📊 *Bᴏᴛ Sᴛᴀᴛɪꜱᴛɪᴄꜱ*\n\n")
	fmt.Fprintf(&b, "👥 Tᴏᴛᴀʟ Uꜱᴇʀꜱ: %d\n", stats.UserCount)
	fmt.Fprintf(&b, "🔍 Tᴏᴛᴀʟ Sᴇᴀʀᴄʜᴇꜱ: %d\n\n", stats.TotalSearches)
	b.WriteString("🎥 *❝𝐓𝐨𝐩 𝟏𝟎 𝐌𝐨𝐬𝐭 𝐒𝐞𝐚𝐫𝐜𝐡𝐞𝐝 𝐌𝐨𝐯𝐢𝐞𝐬❞:*\n")
	for _, m := range stats.TopMovies {
		if m.Title != "" {
			fmt.Fprintf(&b, "- %s: %d Sᴇᴀʀᴄʜᴇꜱ\n", m.Title, m.Count)
		} else {
			fmt.Fprintf(&b, "- ID %d: %d Sᴇᴀʀᴄʜᴇꜱ\n", m.MovieID, m.Count)
		}
	}
	return b.String()
}

// BroadcastStarted announces the fan-out to the issuing admin.
func BroadcastStarted(recipients int) string {
	return fmt.Sprintf("📢 Sᴛᴀʀᴛɪɴɢ Bʀᴏᴀᴅᴄᴀꜱᴛ Tᴏ %d users...", recipients)
}

// BroadcastAnnouncement wraps the admin's text in the announcement frame
// each recipient sees.
func BroadcastAnnouncement(text string) string {
	return "📢 *ᕚ(𝐀𝐧𝐧𝐨𝐮𝐧𝐜𝐞𝐦𝐞𝐧𝐭 𝐟𝐫𝐨𝐦 𝐚𝐝𝐦𝐢𝐧)ᕘ:*\n\n" + text
}

// BroadcastSummary is the completion report sent back to the admin.
func BroadcastSummary(success, failures int) string {
	return fmt.Sprintf("📢 Bʀᴏᴀᴅᴄᴀꜱᴛ Cᴏᴍᴘʟᴇᴛᴇᴅ!\n✅ Sᴜᴄᴄᴇꜱꜱ: %d\n❌ Fᴀɪʟᴜʀᴇꜱ: %d", success, failures)
}

// FormatInlineArticle builds one inline query result from a raw search
// hit, pointing the user at /id for the full detail view.
func FormatInlineArticle(r models.TMDBSearchResult) telegram.InlineQueryResultArticle {
	title := r.Title
	if title == "" {
		title = models.NotAvailable
	}
	year := models.ReleaseYear(r.ReleaseDate)

	overview := r.Overview
	description := "No overview"
	if overview != "" {
		description = truncate(overview, 100) + "..."
	} else {
		overview = "No overview available"
	}

	text := fmt.Sprintf(
		"🎬 *%s* (%s)\n\n📖 %s...\n\n🔍 Use `/id %d` for full details",
		title, year, truncate(overview, 200), r.ID,
	)

	return telegram.InlineQueryResultArticle{
		Type:        "article",
		ID:          strconv.Itoa(r.ID),
		Title:       fmt.Sprintf("%s (%s)", title, year),
		Description: description,
		InputMessageContent: telegram.InputTextMessageContent{
			MessageText: text,
			ParseMode:   "Markdown",
		},
	}
}

// truncate cuts s to at most n runes, safe for multi-byte text.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
