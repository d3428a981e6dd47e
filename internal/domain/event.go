package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventType string

const (
	EventFree EventType = "FREE"
	EventPro  EventType = "PRO"
)

func (t EventType) Valid() bool {
	return t == EventFree || t == EventPro
}

// Event is a booking offering. Price and date stay free-form strings:
// the store is schemaless and the clients render them verbatim.
type Event struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Image     string             `bson:"image" json:"image"`
	Price     string             `bson:"price" json:"price"`
	Date      string             `bson:"date" json:"date"`
	Info      string             `bson:"info" json:"info"`
	Type      EventType          `bson:"type" json:"type"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
