package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dogbook/dogbook-api/internal/core/domain"
)

const breedCollection = "dog_breeds"

type MongoBreedRepository struct {
	coll *mongo.Collection
}

func NewBreedRepository(db *mongo.Database) *MongoBreedRepository {
	return &MongoBreedRepository{coll: db.Collection(breedCollection)}
}

type mongoBreed struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Group       string             `bson:"group"`
	Section     string             `bson:"section"`
	Provisional string             `bson:"provisional,omitempty"`
	Country     string             `bson:"country"`
	URL         string             `bson:"url"`
	Image       string             `bson:"image,omitempty"`
	PDF         string             `bson:"pdf,omitempty"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (r *MongoBreedRepository) Create(ctx context.Context, breed *domain.DogBreed) (*domain.DogBreed, error) {
	doc := mongoBreed{
		Name:        breed.Name,
		Group:       breed.Group,
		Section:     breed.Section,
		Provisional: breed.Provisional,
		Country:     breed.Country,
		URL:         breed.URL,
		Image:       breed.Image,
		PDF:         breed.PDF,
		CreatedAt:   breed.CreatedAt.Unix(),
		UpdatedAt:   breed.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert breed: %w", err)
	}

	created := *breed
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoBreedRepository) FindByID(ctx context.Context, id string) (*domain.DogBreed, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBreedNotFound
	}

	var mb mongoBreed
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBreedNotFound
		}
		return nil, fmt.Errorf("find breed: %w", err)
	}
	return mb.toDomain(), nil
}

func (r *MongoBreedRepository) FindAll(ctx context.Context) ([]domain.DogBreed, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list breeds: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoBreed
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode breeds: %w", err)
	}

	breeds := make([]domain.DogBreed, 0, len(docs))
	for _, mb := range docs {
		breeds = append(breeds, *mb.toDomain())
	}
	return breeds, nil
}

func (mb *mongoBreed) toDomain() *domain.DogBreed {
	return &domain.DogBreed{
		ID:          mb.ID.Hex(),
		Name:        mb.Name,
		Group:       mb.Group,
		Section:     mb.Section,
		Provisional: mb.Provisional,
		Country:     mb.Country,
		URL:         mb.URL,
		Image:       mb.Image,
		PDF:         mb.PDF,
		CreatedAt:   unixToTime(mb.CreatedAt),
		UpdatedAt:   unixToTime(mb.UpdatedAt),
	}
}
