package model

import (
    "time"

    "go.mongodb.org/mongo-driver/bson/primitive"
)

// CarSpecifications groups the technical data sheet of a car.  All four
// fields are free-form strings as entered by catalog editors.
type CarSpecifications struct {
    Motor      string `bson:"motor" json:"motor"`
    Horsepower string `bson:"horsepower" json:"horsepower"`
    Mph0to60   string `bson:"mph0to60" json:"mph0to60"`
    TopSpeed   string `bson:"topSpeed" json:"topSpeed"`
}

// Car represents a catalog entry in the `cars` collection.  CategoryID is a
// weak reference to a Category document; there is no cascade when the
// category is deleted.
type Car struct {
    ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
    Name              string             `bson:"name" json:"name"`
    History           string             `bson:"history" json:"history"`
    Description       string             `bson:"description" json:"description"`
    Specifications    CarSpecifications  `bson:"specifications" json:"specifications"`
    CategoryID        string             `bson:"category_id" json:"category_id"`
    AvailableInMarket bool               `bson:"available_in_market" json:"available_in_market"`
    CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
    UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
    DeletedAt         *time.Time         `bson:"deleted_at" json:"deleted_at"`
}
