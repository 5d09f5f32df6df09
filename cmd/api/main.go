package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/barbershop-pro/booking-api/internal/config"
	dbpkg "github.com/barbershop-pro/booking-api/internal/db"
	"github.com/barbershop-pro/booking-api/internal/metrics"
	"github.com/barbershop-pro/booking-api/internal/middleware"
	"github.com/barbershop-pro/booking-api/internal/routes"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	httpMetrics := metrics.NewHTTPMetrics(nil)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(httpMetrics.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterRoutes(r, db, redisClient, cfg, httpMetrics)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
