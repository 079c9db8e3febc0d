package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/horizonhq/horizon-api/internal/models"
)

// MongoStore is the document backend. Each collection carries the entity
// fields as-is (camelCase, epoch millis), so no record types are needed;
// queries filter on userId equality and logs are sorted server-side.
type MongoStore struct {
	users  *mongo.Collection
	dreams *mongo.Collection
	goals  *mongo.Collection
	logs   *mongo.Collection
}

// OpenMongo connects to the configured Mongo deployment.
func OpenMongo(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	db := client.Database(dbName)
	return &MongoStore{
		users:  db.Collection("users"),
		dreams: db.Collection("dreams"),
		goals:  db.Collection("goals"),
		logs:   db.Collection("logs"),
	}, nil
}

func translateMongoErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (s *MongoStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, translateMongoErr(err)
	}
	return &u, nil
}

func (s *MongoStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, translateMongoErr(err)
	}
	return &u, nil
}

func (s *MongoStore) CreateUser(ctx context.Context, user *models.User) (string, error) {
	user.ID = uuid.NewString()
	user.CreatedAt = nowMillis()

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		return "", err
	}
	return user.ID, nil
}

func (s *MongoStore) ListDreams(ctx context.Context, userID string) ([]models.Dream, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.dreams.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}

	dreams := make([]models.Dream, 0)
	if err := cur.All(ctx, &dreams); err != nil {
		return nil, err
	}
	return dreams, nil
}

func (s *MongoStore) CreateDream(ctx context.Context, dream *models.Dream) (string, error) {
	now := nowMillis()
	dream.ID = uuid.NewString()
	dream.CreatedAt = now
	dream.UpdatedAt = now

	if _, err := s.dreams.InsertOne(ctx, dream); err != nil {
		return "", err
	}
	return dream.ID, nil
}

func (s *MongoStore) UpdateDream(ctx context.Context, id string, upd DreamUpdate) error {
	set := bson.M{"updatedAt": nowMillis()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}
	if upd.Horizon != nil {
		set["horizon"] = *upd.Horizon
	}
	if upd.IsArchived != nil {
		set["isArchived"] = *upd.IsArchived
	}

	res, err := s.dreams.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) ListGoals(ctx context.Context, userID string) ([]models.Goal, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cur, err := s.goals.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}

	goals := make([]models.Goal, 0)
	if err := cur.All(ctx, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (s *MongoStore) CreateGoal(ctx context.Context, goal *models.Goal) (string, error) {
	now := nowMillis()
	goal.ID = uuid.NewString()
	goal.CreatedAt = now
	goal.UpdatedAt = now

	if _, err := s.goals.InsertOne(ctx, goal); err != nil {
		return "", err
	}
	return goal.ID, nil
}

func (s *MongoStore) UpdateGoal(ctx context.Context, id string, upd GoalUpdate) error {
	set := bson.M{"updatedAt": nowMillis()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.Progress != nil {
		set["progress"] = *upd.Progress
	}
	update := bson.M{"$set": set}
	if upd.ClearDeadline {
		update["$unset"] = bson.M{"deadline": ""}
	} else if upd.Deadline != nil {
		set["deadline"] = *upd.Deadline
	}

	res, err := s.goals.UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) ListLogs(ctx context.Context, userID string) ([]models.ActionLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := s.logs.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}

	logs := make([]models.ActionLog, 0)
	if err := cur.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *MongoStore) CreateLog(ctx context.Context, log *models.ActionLog) (string, error) {
	log.ID = uuid.NewString()
	log.CreatedAt = nowMillis()
	if log.Date == 0 {
		log.Date = log.CreatedAt
	}

	if _, err := s.logs.InsertOne(ctx, log); err != nil {
		return "", err
	}
	return log.ID, nil
}
