package databases

// go generate: mockery --name ScheduleDatabase

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/medcare/medcare-api/models"
)

const scheduleCollection = "medicationSchedules"

// ScheduleDatabase contains the methods to use with the medication schedule database
type ScheduleDatabase interface {
	Insert(ctx context.Context, schedule *models.MedicationSchedule) error
	List(ctx context.Context) ([]models.MedicationSchedule, error)
	FindByID(ctx context.Context, id string) (*models.MedicationSchedule, error)
	// MarkDoseTaken increments the completed dose counter and stamps
	// lastTaken. It fails with ErrAtCapacity once every expected dose has
	// been taken, keeping the counter monotonic and capped.
	MarkDoseTaken(ctx context.Context, id string, takenAt time.Time) (*models.MedicationSchedule, error)
	Delete(ctx context.Context, id string) error
}

type scheduleDatabase struct {
	db DatabaseHelper
}

// NewScheduleDatabase initializes a new instance of schedule database with the provided db connection
func NewScheduleDatabase(db DatabaseHelper) ScheduleDatabase {
	return &scheduleDatabase{
		db: db,
	}
}

func (s *scheduleDatabase) Insert(ctx context.Context, schedule *models.MedicationSchedule) error {
	_, err := s.db.Collection(scheduleCollection).InsertOne(ctx, schedule)
	return err
}

func (s *scheduleDatabase) List(ctx context.Context) ([]models.MedicationSchedule, error) {
	cursor, err := s.db.Collection(scheduleCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var schedules []models.MedicationSchedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, err
	}
	if schedules == nil {
		schedules = []models.MedicationSchedule{}
	}
	return schedules, nil
}

func (s *scheduleDatabase) FindByID(ctx context.Context, id string) (*models.MedicationSchedule, error) {
	schedule := &models.MedicationSchedule{}
	err := s.db.Collection(scheduleCollection).FindOne(ctx, bson.M{"_id": id}).Decode(schedule)
	if err != nil {
		return nil, ErrNotFound
	}
	return schedule, nil
}

func (s *scheduleDatabase) MarkDoseTaken(ctx context.Context, id string, takenAt time.Time) (*models.MedicationSchedule, error) {
	// guarded update so concurrent takers can never push the counter past
	// totalDoses
	res, err := s.db.Collection(scheduleCollection).UpdateOne(ctx,
		bson.M{"_id": id, "$expr": bson.M{"$lt": bson.A{"$completedDoses", "$totalDoses"}}},
		bson.M{
			"$inc": bson.M{"completedDoses": 1},
			"$set": bson.M{"lastTaken": takenAt},
		},
	)
	if err != nil {
		return nil, err
	}
	if res.ModifiedCount == 0 {
		if _, err := s.FindByID(ctx, id); errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, ErrAtCapacity
	}
	return s.FindByID(ctx, id)
}

func (s *scheduleDatabase) Delete(ctx context.Context, id string) error {
	// deleting an absent schedule is a no-op
	_, err := s.db.Collection(scheduleCollection).DeleteOne(ctx, bson.M{"_id": id})
	return err
}
