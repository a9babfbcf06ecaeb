package main

import (
	"log"

	"platefeed/config"
	httpapi "platefeed/internal/api/http"
	"platefeed/internal/service"
	"platefeed/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	if err := storage.EnsureSchema(db); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()
	kafkaWriter := config.NewKafkaWriter("feed-events")
	defer kafkaWriter.Close()

	repository := storage.NewPostgresRepository(db)
	cache := storage.NewRedisFeedCache(rdb, config.CacheTTL())
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	feedSvc := service.NewFeedService(repository, repository, cache, publisher).
		WithDiversityCap(config.DiversityCap()).
		WithTimeout(config.RequestTimeout())

	handler := httpapi.NewHandler(feedSvc)
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(":"+config.Port(), router)
}
