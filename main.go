package main

import (
	"context"
	"log"
	"time"

	"github.com/sanjayxseth/mskitchen/config"
	httpapi "github.com/sanjayxseth/mskitchen/internal/api/http"
	"github.com/sanjayxseth/mskitchen/internal/events"
	"github.com/sanjayxseth/mskitchen/internal/notify"
	"github.com/sanjayxseth/mskitchen/internal/service"
	"github.com/sanjayxseth/mskitchen/internal/storage"
)

const ordersTopic = "orders"

func main() {
	config.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	redisClient := config.MustInitRedis()
	defer redisClient.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	cache := storage.NewRedisCache(redisClient, 24*time.Hour)

	writer := config.NewKafkaWriter(ordersTopic)
	defer writer.Close()
	publisher := storage.NewKafkaPublisher(writer)

	notifier := notify.NewTwilioNotifier(
		config.Env("TWILIO_ACCOUNT_SID", ""),
		config.Env("TWILIO_AUTH_TOKEN", ""),
		config.Env("TWILIO_WHATSAPP_FROM", ""),
	)

	qr := service.DefaultUPIQRGenerator{PayeeName: config.Env("UPI_PAYEE_NAME", "MS Kitchen")}
	operatorNumber := config.Env("OPERATOR_WHATSAPP", "")
	orderURL := config.Env("ORDER_URL", "http://localhost:3000/order")

	orderSvc := service.NewOrderService(repo, notifier, publisher, qr, operatorNumber)
	menuSvc := service.NewMenuService(repo, notifier, orderURL)
	customerSvc := service.NewCustomerService(repo)
	reviewSvc := service.NewReviewService(repo, repo, cache)
	recipeSvc := service.NewRecipeService(repo)
	reportSvc := service.NewReportService(repo)
	analyticsSvc := service.NewAnalyticsService(cache, repo)

	reader := config.NewKafkaReader(ordersTopic, "mskitchen-analytics")
	defer reader.Close()
	consumer := events.NewConsumer(reader, cache)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(orderSvc, menuSvc, customerSvc, reviewSvc, recipeSvc, reportSvc, analyticsSvc)
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(":"+config.Env("PORT", "8080"), router)
}
