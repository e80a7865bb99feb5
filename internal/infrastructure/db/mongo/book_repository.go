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

const collectionBooks = "books"

type BookRepository struct {
	coll *mongo.Collection
}

func NewBookRepository(db *mongo.Database) *BookRepository {
	return &BookRepository{coll: db.Collection(collectionBooks)}
}

type bookDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	AuthorID    primitive.ObjectID `bson:"author_id"`
	Description string             `bson:"description,omitempty"`
}

func (d bookDoc) toDomain() domain.Book {
	return domain.Book{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		AuthorID:    d.AuthorID.Hex(),
		Description: d.Description,
	}
}

// Create inserts a new book. The unique index on title turns a concurrent
// duplicate title into a duplicate-key error here.
func (r *BookRepository) Create(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	authorOID, err := primitive.ObjectIDFromHex(book.AuthorID)
	if err != nil {
		return nil, domain.ErrAuthorNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bookDoc{Title: book.Title, AuthorID: authorOID, Description: book.Description}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrTitleTaken
		}
		return nil, fmt.Errorf("insert book: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}

func (r *BookRepository) FindAll(ctx context.Context) ([]domain.Book, error) {
	return r.find(ctx, bson.M{})
}

func (r *BookRepository) FindByID(ctx context.Context, id string) (*domain.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc bookDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book: %w", err)
	}
	book := doc.toDomain()
	return &book, nil
}

func (r *BookRepository) FindByAuthorIDs(ctx context.Context, authorIDs []string) ([]domain.Book, error) {
	oids := make([]primitive.ObjectID, 0, len(authorIDs))
	for _, id := range authorIDs {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"author_id": bson.M{"$in": oids}})
}

// Update replaces title, author_id and description in a single $set write.
func (r *BookRepository) Update(ctx context.Context, book *domain.Book) error {
	oid, err := primitive.ObjectIDFromHex(book.ID)
	if err != nil {
		return domain.ErrBookNotFound
	}
	authorOID, err := primitive.ObjectIDFromHex(book.AuthorID)
	if err != nil {
		return domain.ErrAuthorNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"title":       book.Title,
		"author_id":   authorOID,
		"description": book.Description,
	}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrTitleTaken
		}
		return fmt.Errorf("update book: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBookNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

// DeleteByAuthorID removes every book owned by the given author. Deleting
// zero books is not an error.
func (r *BookRepository) DeleteByAuthorID(ctx context.Context, authorID string) error {
	oid, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return domain.ErrAuthorNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"author_id": oid}); err != nil {
		return fmt.Errorf("delete books by author: %w", err)
	}
	return nil
}

// Search matches query as a case-insensitive substring of title or description.
func (r *BookRepository) Search(ctx context.Context, query string) ([]domain.Book, error) {
	re := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	return r.find(ctx, bson.M{"$or": []bson.M{
		{"title": re},
		{"description": re},
	}})
}

func (r *BookRepository) find(ctx context.Context, filter bson.M) ([]domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find books: %w", err)
	}
	defer cur.Close(ctx)

	var books []domain.Book
	for cur.Next(ctx) {
		var doc bookDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode book: %w", err)
		}
		books = append(books, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}
	return books, nil
}
