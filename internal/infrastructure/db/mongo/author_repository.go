package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookverse/bookstore-api/internal/core/domain"
)

const collectionAuthors = "authors"

type AuthorRepository struct {
	coll *mongo.Collection
}

func NewAuthorRepository(db *mongo.Database) *AuthorRepository {
	return &AuthorRepository{coll: db.Collection(collectionAuthors)}
}

type authorDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
	Bio  string             `bson:"bio,omitempty"`
}

func (d authorDoc) toDomain() domain.Author {
	return domain.Author{ID: d.ID.Hex(), Name: d.Name, Bio: d.Bio}
}

func (r *AuthorRepository) Create(ctx context.Context, author *domain.Author) (*domain.Author, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := authorDoc{Name: author.Name, Bio: author.Bio}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert author: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}

func (r *AuthorRepository) FindAll(ctx context.Context) ([]domain.Author, error) {
	return r.find(ctx, bson.M{})
}

func (r *AuthorRepository) FindByID(ctx context.Context, id string) (*domain.Author, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAuthorNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc authorDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("find author: %w", err)
	}
	author := doc.toDomain()
	return &author, nil
}

func (r *AuthorRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Author, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

// Update replaces name and bio in a single $set write.
func (r *AuthorRepository) Update(ctx context.Context, author *domain.Author) error {
	oid, err := primitive.ObjectIDFromHex(author.ID)
	if err != nil {
		return domain.ErrAuthorNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"name": author.Name,
		"bio":  author.Bio,
	}})
	if err != nil {
		return fmt.Errorf("update author: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAuthorNotFound
	}
	return nil
}

func (r *AuthorRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAuthorNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAuthorNotFound
	}
	return nil
}

// Search matches query as a case-insensitive substring of name or bio.
func (r *AuthorRepository) Search(ctx context.Context, query string) ([]domain.Author, error) {
	re := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	return r.find(ctx, bson.M{"$or": []bson.M{
		{"name": re},
		{"bio": re},
	}})
}

func (r *AuthorRepository) find(ctx context.Context, filter bson.M) ([]domain.Author, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find authors: %w", err)
	}
	defer cur.Close(ctx)

	var authors []domain.Author
	for cur.Next(ctx) {
		var doc authorDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode author: %w", err)
		}
		authors = append(authors, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate authors: %w", err)
	}
	return authors, nil
}
