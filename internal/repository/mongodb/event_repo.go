package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eventsnow/backend/internal/domain"
)

const eventsCollection = "events"

type eventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *eventRepository {
	return &eventRepository{coll: db.Collection(eventsCollection)}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, event)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicateEvent
	}
	return err
}

func (r *eventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEventNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *eventRepository) FindByName(ctx context.Context, name string) (*domain.Event, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *eventRepository) FindByType(ctx context.Context, eventType domain.EventType) ([]*domain.Event, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"type": eventType},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := make([]*domain.Event, 0)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) findOne(ctx context.Context, filter bson.M) (*domain.Event, error) {
	var event domain.Event
	err := r.coll.FindOne(ctx, filter).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}
