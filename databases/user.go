package databases

// go generate: mockery --name UserDatabase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medcare/medcare-api/models"
)

const userCollection = "users"

// UserDatabase contains the methods to use with the user database
type UserDatabase interface {
	Insert(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Count(ctx context.Context) (int64, error)
}

type userDatabase struct {
	db DatabaseHelper
}

// NewUserDatabase initializes a new instance of user database with the provided db connection
func NewUserDatabase(db DatabaseHelper) UserDatabase {
	return &userDatabase{
		db: db,
	}
}

func (u *userDatabase) Insert(ctx context.Context, user *models.User) error {
	existing, err := u.FindByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if existing != nil {
		return ErrDuplicateEmail
	}

	_, err = u.db.Collection(userCollection).InsertOne(ctx, user)
	return err
}

func (u *userDatabase) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := u.db.Collection(userCollection).FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (u *userDatabase) Count(ctx context.Context) (int64, error) {
	return u.db.Collection(userCollection).CountDocuments(ctx, bson.M{})
}
