// Command seed drops and repopulates the boutique collections with sample
// data: 12 products across 3 categories, 4 clients, and orders in both the
// embedding and linking models.
package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"boutique/internal/config"
	"boutique/internal/database"
	"boutique/internal/models"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		logrus.WithError(err).Fatal("mongodb connection failed")
	}

	db := client.Database(config.AppEnv.DBName)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	productIDs, err := seedProducts(ctx, db)
	if err != nil {
		logrus.WithError(err).Fatal("seeding products failed")
	}

	clientIDs, err := seedClients(ctx, db)
	if err != nil {
		logrus.WithError(err).Fatal("seeding clients failed")
	}

	if err := seedEmbeddedOrders(ctx, db, productIDs); err != nil {
		logrus.WithError(err).Fatal("seeding embedded orders failed")
	}

	if err := seedLinkedOrders(ctx, db, productIDs, clientIDs); err != nil {
		logrus.WithError(err).Fatal("seeding linked orders failed")
	}

	if err := database.EnsureProductIndexes(db); err != nil {
		logrus.WithError(err).Warn("product index warning")
	}

	logrus.Info("database initialization complete")
}

func seedProducts(ctx context.Context, db *mongo.Database) ([]primitive.ObjectID, error) {
	products := []interface{}{
		models.Product{Name: "T-Shirt Blanc", Price: 19.99, Stock: 100, Category: "Vêtements"},
		models.Product{Name: "Jean Slim", Price: 49.99, Stock: 50, Category: "Vêtements"},
		models.Product{Name: "Baskets Running", Price: 89.99, Stock: 30, Category: "Chaussures"},
		models.Product{Name: "Sac à Main Cuir", Price: 129.99, Stock: 20, Category: "Accessoires"},
		models.Product{Name: "Montre Classique", Price: 199.99, Stock: 15, Category: "Accessoires"},
		models.Product{Name: "Chemise Bleue", Price: 39.99, Stock: 60, Category: "Vêtements"},
		models.Product{Name: "Robe d'Été", Price: 59.99, Stock: 40, Category: "Vêtements"},
		models.Product{Name: "Sandales Plage", Price: 29.99, Stock: 70, Category: "Chaussures"},
		models.Product{Name: "Ceinture Cuir", Price: 34.99, Stock: 45, Category: "Accessoires"},
		models.Product{Name: "Lunettes de Soleil", Price: 79.99, Stock: 25, Category: "Accessoires"},
		models.Product{Name: "Pull-over Laine", Price: 69.99, Stock: 35, Category: "Vêtements"},
		models.Product{Name: "Bottes Hiver", Price: 119.99, Stock: 22, Category: "Chaussures"},
	}

	if err := db.Collection("Produits").Drop(ctx); err != nil {
		return nil, err
	}
	res, err := db.Collection("Produits").InsertMany(ctx, products)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(res.InsertedIDs))
	for _, id := range res.InsertedIDs {
		ids = append(ids, id.(primitive.ObjectID))
	}
	logrus.WithField("count", len(ids)).Info("inserted products")
	return ids, nil
}

func seedClients(ctx context.Context, db *mongo.Database) ([]primitive.ObjectID, error) {
	clients := []interface{}{
		models.Client{Surname: "Dupont", FirstName: "Marie", Email: "marie.dupont@email.com", City: "Paris"},
		models.Client{Surname: "Martin", FirstName: "Jean", Email: "jean.martin@email.com", City: "Lyon"},
		models.Client{Surname: "Bernard", FirstName: "Sophie", Email: "sophie.bernard@email.com", City: "Marseille"},
		models.Client{Surname: "Petit", FirstName: "Lucas", Email: "lucas.petit@email.com", City: "Bordeaux"},
	}

	if err := db.Collection("Clients").Drop(ctx); err != nil {
		return nil, err
	}
	res, err := db.Collection("Clients").InsertMany(ctx, clients)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(res.InsertedIDs))
	for _, id := range res.InsertedIDs {
		ids = append(ids, id.(primitive.ObjectID))
	}
	logrus.WithField("count", len(ids)).Info("inserted clients")
	return ids, nil
}

func seedEmbeddedOrders(ctx context.Context, db *mongo.Database, productIDs []primitive.ObjectID) error {
	cursor, err := db.Collection("Produits").Find(ctx, bson.M{"_id": bson.M{"$in": productIDs[:4]}})
	if err != nil {
		return err
	}
	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return err
	}

	firstItems := []models.OrderItem{
		{Name: products[0].Name, Price: products[0].Price, Quantity: 2},
		{Name: products[1].Name, Price: products[1].Price, Quantity: 1},
	}
	secondItems := []models.OrderItem{
		{Name: products[2].Name, Price: products[2].Price, Quantity: 1},
		{Name: products[3].Name, Price: products[3].Price, Quantity: 1},
	}

	orders := []interface{}{
		models.EmbeddedOrder{
			ClientName: "Dupont Marie",
			OrderedAt:  time.Now(),
			Status:     "Livrée",
			Items:      firstItems,
			Total:      itemsTotal(firstItems),
		},
		models.EmbeddedOrder{
			ClientName: "Martin Jean",
			OrderedAt:  time.Now(),
			Status:     models.DefaultOrderStatus,
			Items:      secondItems,
			Total:      itemsTotal(secondItems),
		},
	}

	if err := db.Collection("CommandesEmbedding").Drop(ctx); err != nil {
		return err
	}
	res, err := db.Collection("CommandesEmbedding").InsertMany(ctx, orders)
	if err != nil {
		return err
	}
	logrus.WithField("count", len(res.InsertedIDs)).Info("inserted embedded orders")
	return nil
}

func seedLinkedOrders(ctx context.Context, db *mongo.Database, productIDs, clientIDs []primitive.ObjectID) error {
	orders := []interface{}{
		models.LinkedOrder{
			ClientID:  clientIDs[2],
			OrderedAt: time.Now(),
			Status:    "En préparation",
			Items: []models.ProductRef{
				{ProductID: productIDs[4], Quantity: 1},
				{ProductID: productIDs[5], Quantity: 2},
			},
		},
		models.LinkedOrder{
			ClientID:  clientIDs[3],
			OrderedAt: time.Now(),
			Status:    "Livrée",
			Items: []models.ProductRef{
				{ProductID: productIDs[6], Quantity: 1},
				{ProductID: productIDs[7], Quantity: 1},
				{ProductID: productIDs[8], Quantity: 1},
			},
		},
	}

	if err := db.Collection("CommandesLinking").Drop(ctx); err != nil {
		return err
	}
	res, err := db.Collection("CommandesLinking").InsertMany(ctx, orders)
	if err != nil {
		return err
	}
	logrus.WithField("count", len(res.InsertedIDs)).Info("inserted linked orders")
	return nil
}

func itemsTotal(items []models.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
