package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is one Telegram user known to the bot. Users are upserted on every
// interaction, keyed by their Telegram user id.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID    int64              `bson:"user_id" json:"user_id"`
	Username  string             `bson:"username" json:"username"`
	FirstName string             `bson:"first_name" json:"first_name"`
	LastName  string             `bson:"last_name" json:"last_name"`
	JoinDate  time.Time          `bson:"join_date" json:"join_date"`
}

// SearchLog is one append-only entry of the search history. MovieID is nil
// when the query resolved to nothing.
type SearchLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID     int64              `bson:"user_id" json:"user_id"`
	Query      string             `bson:"query" json:"query"`
	MovieID    *int               `bson:"movie_id" json:"movie_id"`
	SearchDate time.Time          `bson:"search_date" json:"search_date"`
}

// Favorite is a user-scoped saved movie, unique per (user_id, movie_id).
// The title is denormalized so the favorites list renders without a TMDB
// round trip.
type Favorite struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID     int64              `bson:"user_id" json:"user_id"`
	MovieID    int                `bson:"movie_id" json:"movie_id"`
	MovieTitle string             `bson:"movie_title" json:"movie_title"`
	AddDate    time.Time          `bson:"add_date" json:"add_date"`
}

// Admin marks a privileged Telegram user id.
type Admin struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID int64              `bson:"user_id" json:"user_id"`
}

// SearchStat is one row of the top-searched aggregation. Title is filled
// in afterwards by a detail lookup and stays empty when the lookup fails.
type SearchStat struct {
	MovieID int    `bson:"_id" json:"movie_id"`
	Count   int64  `bson:"count" json:"count"`
	Title   string `bson:"-" json:"title,omitempty"`
}

// BotStats is the admin statistics summary.
type BotStats struct {
	UserCount     int64        `json:"user_count"`
	TotalSearches int64        `json:"total_searches"`
	TopMovies     []SearchStat `json:"top_movies"`
}
