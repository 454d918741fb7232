// File: database/repository/slot/slot_mongo.go
package slotRepo

import (
	"log"

	"go.mongodb.org/mongo-driver/mongo"

	"paintbook/database"
)

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a MongoDB-backed SlotRepository.
func NewMongoSlotRepo() SlotRepository {
	db := database.MongoClient.Database(database.Name)
	repo := &mongoSlotRepo{
		coll: db.Collection("slots"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		log.Printf("warning: %v", err)
	}
	return repo
}
