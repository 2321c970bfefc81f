package databases

// go generate: mockery --name RefillReminderDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/medcare/medcare-api/models"
)

const refillCollection = "refillReminders"

// RefillReminderDatabase contains the methods to use with the refill reminder database
type RefillReminderDatabase interface {
	Insert(ctx context.Context, reminder *models.RefillReminder) error
	List(ctx context.Context) ([]models.RefillReminder, error)
	ListUnsent(ctx context.Context) ([]models.RefillReminder, error)
	// MarkSent flips the sent flag exactly once. It reports false when the
	// reminder is absent or was already marked, so notification delivery
	// stays at-most-once.
	MarkSent(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

type refillReminderDatabase struct {
	db DatabaseHelper
}

// NewRefillReminderDatabase initializes a new instance of refill reminder database with the provided db connection
func NewRefillReminderDatabase(db DatabaseHelper) RefillReminderDatabase {
	return &refillReminderDatabase{
		db: db,
	}
}

func (r *refillReminderDatabase) Insert(ctx context.Context, reminder *models.RefillReminder) error {
	_, err := r.db.Collection(refillCollection).InsertOne(ctx, reminder)
	return err
}

func (r *refillReminderDatabase) List(ctx context.Context) ([]models.RefillReminder, error) {
	return r.find(ctx, bson.M{})
}

func (r *refillReminderDatabase) ListUnsent(ctx context.Context) ([]models.RefillReminder, error) {
	return r.find(ctx, bson.M{"sent": false})
}

func (r *refillReminderDatabase) find(ctx context.Context, filter bson.M) ([]models.RefillReminder, error) {
	cursor, err := r.db.Collection(refillCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var reminders []models.RefillReminder
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, err
	}
	if reminders == nil {
		reminders = []models.RefillReminder{}
	}
	return reminders, nil
}

func (r *refillReminderDatabase) MarkSent(ctx context.Context, id string) (bool, error) {
	res, err := r.db.Collection(refillCollection).UpdateOne(ctx,
		bson.M{"_id": id, "sent": false},
		bson.M{"$set": bson.M{"sent": true}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

func (r *refillReminderDatabase) Delete(ctx context.Context, id string) error {
	// deleting an absent reminder is a no-op
	_, err := r.db.Collection(refillCollection).DeleteOne(ctx, bson.M{"_id": id})
	return err
}
