package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dogbook/dogbook-api/internal/core/domain"
)

const dogCollection = "dogs"

type MongoDogRepository struct {
	coll *mongo.Collection
}

func NewDogRepository(db *mongo.Database) *MongoDogRepository {
	return &MongoDogRepository{coll: db.Collection(dogCollection)}
}

type mongoDog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	URL         string             `bson:"url"`
	Image       string             `bson:"image,omitempty"`
	OwnerID     string             `bson:"owner_id"`
	BreedID     string             `bson:"breed_id"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (r *MongoDogRepository) Create(ctx context.Context, dog *domain.Dog) (*domain.Dog, error) {
	doc := mongoDog{
		Name:        dog.Name,
		Description: dog.Description,
		URL:         dog.URL,
		Image:       dog.Image,
		OwnerID:     dog.OwnerID,
		BreedID:     dog.BreedID,
		CreatedAt:   dog.CreatedAt.Unix(),
		UpdatedAt:   dog.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert dog: %w", err)
	}

	created := *dog
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoDogRepository) FindByID(ctx context.Context, id string) (*domain.Dog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDogNotFound
	}

	var md mongoDog
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&md); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrDogNotFound
		}
		return nil, fmt.Errorf("find dog: %w", err)
	}
	return md.toDomain(), nil
}

func (r *MongoDogRepository) FindAll(ctx context.Context) ([]domain.Dog, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoDogRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Dog, error) {
	return r.find(ctx, bson.M{"owner_id": ownerID})
}

func (r *MongoDogRepository) FindByBreed(ctx context.Context, breedID string) ([]domain.Dog, error) {
	return r.find(ctx, bson.M{"breed_id": breedID})
}

func (r *MongoDogRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete dog: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoDogRepository) find(ctx context.Context, filter bson.M) ([]domain.Dog, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list dogs: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoDog
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode dogs: %w", err)
	}

	dogs := make([]domain.Dog, 0, len(docs))
	for _, md := range docs {
		dogs = append(dogs, *md.toDomain())
	}
	return dogs, nil
}

func (md *mongoDog) toDomain() *domain.Dog {
	return &domain.Dog{
		ID:          md.ID.Hex(),
		Name:        md.Name,
		Description: md.Description,
		URL:         md.URL,
		Image:       md.Image,
		OwnerID:     md.OwnerID,
		BreedID:     md.BreedID,
		CreatedAt:   unixToTime(md.CreatedAt),
		UpdatedAt:   unixToTime(md.UpdatedAt),
	}
}
