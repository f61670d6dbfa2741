package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"boutique/internal/config"
	"boutique/internal/database"
	"boutique/internal/handlers"
	"boutique/internal/middleware"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		logrus.WithError(err).Fatal("mongodb connection failed")
	}

	db := client.Database(config.AppEnv.DBName)
	logrus.WithField("db", db.Name()).Info("mongodb connected")

	if err := database.EnsureProductIndexes(db); err != nil {
		logrus.WithError(err).Warn("product index warning")
	}

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(cors.Default())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.WithField("panic", recovered).Error("recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Internal server error",
		})
	}))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Resource not found"})
	})

	r.GET("/api/products", handlers.GetProducts(db))
	r.POST("/api/products", handlers.CreateProduct(db))
	r.GET("/api/products/:id", handlers.GetProduct(db))
	r.PUT("/api/products/:id", handlers.UpdateProduct(db))
	r.DELETE("/api/products/:id", handlers.DeleteProduct(db))

	r.POST("/api/products/:id/tags", handlers.AddProductTag(db))
	r.DELETE("/api/products/:id/tags", handlers.RemoveProductTag(db))
	r.POST("/api/products/:id/tags/pop", handlers.PopProductTag(db))

	r.GET("/api/orders/embedding", handlers.GetEmbeddedOrders(db))
	r.POST("/api/orders/embedding", handlers.CreateEmbeddedOrder(db))
	r.GET("/api/orders/embedding/:id", handlers.GetEmbeddedOrder(db))
	r.PUT("/api/orders/embedding/:id", handlers.UpdateEmbeddedOrder(db))
	r.DELETE("/api/orders/embedding/:id", handlers.DeleteEmbeddedOrder(db))
	r.POST("/api/orders/embedding/:id/products", handlers.AddOrderItem(db))
	r.DELETE("/api/orders/embedding/:id/products", handlers.RemoveOrderItem(db))

	r.GET("/api/orders/linking", handlers.GetLinkedOrders(db))
	r.POST("/api/orders/linking", handlers.CreateLinkedOrder(db))
	r.GET("/api/orders/linking/:id", handlers.GetLinkedOrder(db))
	r.PUT("/api/orders/linking/:id", handlers.UpdateLinkedOrder(db))
	r.DELETE("/api/orders/linking/:id", handlers.DeleteLinkedOrder(db))
	r.POST("/api/orders/linking/:id/products", handlers.AddLinkedProduct(db))
	r.DELETE("/api/orders/linking/:id/products/:productId", handlers.RemoveLinkedProduct(db))

	r.GET("/api/clients", handlers.GetClients(db))

	r.GET("/api/stats/sales-by-category", handlers.SalesByCategory(db))
	r.GET("/api/stats/stock-by-category", handlers.StockByCategory(db))
	r.GET("/api/stats/top-products", handlers.TopProducts(db))

	r.GET("/api/indexes", handlers.GetIndexes(db))
	r.POST("/api/indexes", handlers.CreateIndex(db))

	r.POST("/api/demo/operators", handlers.DemoOperators(db))

	logrus.WithField("port", config.AppEnv.Port).Info("server starting")
	if err := r.Run(":" + config.AppEnv.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
