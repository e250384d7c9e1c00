package data_access

import (
	"context"
	"time"

	"movie-bot-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	db         *MongoDB
	collection *mongo.Collection
}

type SearchRepository struct {
	db         *MongoDB
	collection *mongo.Collection
}

type FavoriteRepository struct {
	db         *MongoDB
	collection *mongo.Collection
}

type AdminRepository struct {
	db         *MongoDB
	collection *mongo.Collection
}

func NewUserRepository(db *MongoDB) *UserRepository {
	return &UserRepository{
		db:         db,
		collection: db.Collection(UsersCollection),
	}
}

func NewSearchRepository(db *MongoDB) *SearchRepository {
	return &SearchRepository{
		db:         db,
		collection: db.Collection(SearchesCollection),
	}
}

func NewFavoriteRepository(db *MongoDB) *FavoriteRepository {
	return &FavoriteRepository{
		db:         db,
		collection: db.Collection(FavoritesCollection),
	}
}

func NewAdminRepository(db *MongoDB) *AdminRepository {
	return &AdminRepository{
		db:         db,
		collection: db.Collection(AdminsCollection),
	}
}

// UserRepository methods

// Upsert records the user, keyed by Telegram user id. Profile fields are
// refreshed on every interaction; join_date is only written on first
// contact.
func (r *UserRepository) Upsert(ctx context.Context, user *models.User) error {
	filter := bson.M{"user_id": user.UserID}
	update := bson.M{
		"$set": bson.M{
			"username":   user.Username,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
		},
		"$setOnInsert": bson.M{"join_date": time.Now()},
	}
	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// AllIDs returns every known Telegram user id, for broadcasting.
func (r *UserRepository) AllIDs(ctx context.Context) ([]int64, error) {
	cursor, err := r.collection.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"user_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.UserID)
	}
	return ids, nil
}

// SearchRepository methods

func (r *SearchRepository) Insert(ctx context.Context, entry *models.SearchLog) error {
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

func (r *SearchRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// TopMovies returns the most-searched movie ids, most popular first.
// Searches that resolved to nothing are left out.
func (r *SearchRepository) TopMovies(ctx context.Context, limit int64) ([]models.SearchStat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"movie_id": bson.M{"$ne": nil}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$movie_id",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stats []models.SearchStat
	if err = cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// FavoriteRepository methods

func (r *FavoriteRepository) Exists(ctx context.Context, userID int64, movieID int) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"user_id": userID, "movie_id": movieID})
	return count > 0, err
}

func (r *FavoriteRepository) Add(ctx context.Context, fav *models.Favorite) error {
	_, err := r.collection.InsertOne(ctx, fav)
	return err
}

// Remove deletes the favorite and reports whether anything was there to
// delete.
func (r *FavoriteRepository) Remove(ctx context.Context, userID int64, movieID int) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID, "movie_id": movieID})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// ListByUser returns the user's favorites, most recently added first.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]models.Favorite, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.M{"add_date": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var favorites []models.Favorite
	if err = cursor.All(ctx, &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

// AdminRepository methods

func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// Seed inserts the static admin allow-list. Callers only invoke it when
// the collection is empty, so restarts do not resurrect removed admins.
func (r *AdminRepository) Seed(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		docs = append(docs, models.Admin{UserID: id})
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *AdminRepository) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"user_id": userID})
	return count > 0, err
}
