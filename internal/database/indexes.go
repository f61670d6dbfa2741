package database

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureProductIndexes creates the default index on Produits.nom. Index
// creation is idempotent, so calling this on every startup is safe.
func EnsureProductIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("Produits").Indexes()

	nameIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "nom", Value: 1}},
		Options: options.Index().SetName("nom_1"),
	}

	name, err := indexes.CreateOne(ctx, nameIndex)
	if err != nil {
		logrus.WithError(err).Warn("EnsureProductIndexes: nom index error")
		return err
	}
	logrus.WithField("index", name).Info("EnsureProductIndexes: index ready")
	return nil
}
