package infrastructure

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Agurato/filmstore/internal/model"
)

// filmsCounterID is the counters document holding the last film ID
const filmsCounterID = "films"

// MongoDB stores films in a MongoDB collection, with auto-incremented integer IDs
type MongoDB struct {
	client *mongo.Client

	filmsColl    *mongo.Collection
	countersColl *mongo.Collection
}

// NewMongoDB connects to the MongoDB server at uri and uses the dbName database
func NewMongoDB(ctx context.Context, uri, dbName string) (*MongoDB, error) {
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, wrapError("connect", err)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		mongoClient.Disconnect(ctx)
		return nil, wrapError("ping", err)
	}
	log.Info().Str("database", dbName).Msg("Using MongoDB database")

	mongoDb := mongoClient.Database(dbName)
	return &MongoDB{
		client:       mongoClient,
		filmsColl:    mongoDb.Collection("films"),
		countersColl: mongoDb.Collection("counters"),
	}, nil
}

// MongoURI builds a connection URI from its parts
func MongoURI(dbUser, dbPassword, dbURL, dbPort string) string {
	if dbUser == "" {
		return fmt.Sprintf("mongodb://%s:%s", dbURL, dbPort)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s", dbUser, dbPassword, dbURL, dbPort)
}

// Close closes the MongoDB connection
func (m MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Ping checks that the server is reachable
func (m MongoDB) Ping(ctx context.Context) error {
	return wrapError("ping", m.client.Ping(ctx, nil))
}

// Drop removes every film and resets the ID counter
func (m MongoDB) Drop(ctx context.Context) error {
	if err := m.filmsColl.Drop(ctx); err != nil {
		return wrapError("drop films", err)
	}
	_, err := m.countersColl.DeleteOne(ctx, bson.M{"_id": filmsCounterID})
	return wrapError("reset films counter", err)
}

// FindByID fetches a film from its ID
func (m MongoDB) FindByID(ctx context.Context, id int64) (*model.Film, error) {
	var film model.Film
	err := m.filmsColl.FindOne(ctx, bson.M{"_id": id}).Decode(&film)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrFilmNotFound
	}
	if err != nil {
		return nil, wrapError("find film", err)
	}
	return &film, nil
}

// FindAll returns every film of the collection
func (m MongoDB) FindAll(ctx context.Context) ([]model.Film, error) {
	filmsCur, err := m.filmsColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, wrapError("find films", err)
	}
	films := []model.Film{}
	if err := filmsCur.All(ctx, &films); err != nil {
		return nil, wrapError("decode films", err)
	}
	return films, nil
}

// Save inserts a film with the next ID of the counter
func (m MongoDB) Save(ctx context.Context, film *model.Film) error {
	if err := film.ExpectState(model.Transient); err != nil {
		return err
	}
	id, err := m.nextFilmID(ctx)
	if err != nil {
		return err
	}
	film.ID = id
	if _, err := m.filmsColl.InsertOne(ctx, film); err != nil {
		film.ID = 0
		return wrapError("insert film", err)
	}
	return nil
}

// Update overwrites the stored film fields
func (m MongoDB) Update(ctx context.Context, film *model.Film) error {
	if err := film.ExpectState(model.Persisted); err != nil {
		return err
	}
	_, err := m.filmsColl.UpdateOne(ctx,
		bson.M{"_id": film.ID},
		bson.M{"$set": bson.M{
			"title":    film.Title,
			"year":     film.Year,
			"duration": film.Duration,
		}})
	return wrapError("update film", err)
}

// Delete removes the film from the collection
func (m MongoDB) Delete(ctx context.Context, film *model.Film) error {
	if err := film.ExpectState(model.Persisted); err != nil {
		return err
	}
	_, err := m.filmsColl.DeleteOne(ctx, bson.M{"_id": film.ID})
	return wrapError("delete film", err)
}

// nextFilmID atomically increments the films counter
func (m MongoDB) nextFilmID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := m.countersColl.FindOneAndUpdate(ctx,
		bson.M{"_id": filmsCounterID},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, wrapError("next film ID", err)
	}
	return counter.Seq, nil
}
