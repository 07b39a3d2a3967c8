package main

import (
	"context"

	"patientcleaner/internal/patients/handler"
	"patientcleaner/internal/patients/loader"
	"patientcleaner/internal/patients/reporter"
	"patientcleaner/internal/patients/service"
	"patientcleaner/internal/patients/validator"
	"patientcleaner/pkg/app"
	"patientcleaner/pkg/client"
	"patientcleaner/pkg/config"
	"patientcleaner/pkg/kafka"
	kafka_config "patientcleaner/pkg/kafka/config"
)

const serviceName = "patient-cleaner-api"

func main() {
	cfg := config.Load(serviceName)
	cfg.Log.Info("Starting Patient Cleaner service")

	application := app.NewApplication(cfg)

	var (
		source loader.Source
		pinger handler.Pinger
	)
	if cfg.MongoEnabled() {
		mongoClient := connectMongoDB(cfg)
		application.OnShutdown(mongoClient)
		source = loader.NewMongoLoader(mongoClient.Client, cfg.MongoDatabaseName, cfg.MongoCollection)
		pinger = mongoClient
	} else {
		cfg.Log.Info("MongoDB not configured, GET /v1/patients/clean is disabled")
	}

	var rep reporter.Reporter
	if cfg.KafkaEnabled() {
		producer := initProducer(cfg)
		application.OnShutdown(producer)
		rep = reporter.NewKafkaPublisher(producer, serviceName, cfg.Log)
	}

	cleaner := initServices(cfg)

	application.SetApp(
		handler.NewCleanerHandler(cleaner, source, rep, cfg.Log),
		handler.NewHealthHandler(pinger, cfg.Log),
	)
	application.Run()
}

func connectMongoDB(cfg *config.Config) *client.MongoClient {
	mongoClient, err := client.NewMongoClient(context.Background(), cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
	if err != nil {
		cfg.Log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	return mongoClient
}

func initProducer(cfg *config.Config) *kafka.Producer {
	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	producer, err := kafka.NewProducer(kafkaCfg, cfg.KafkaTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	return producer
}

func initServices(cfg *config.Config) service.PatientCleaner {
	patientValidator := validator.NewPatientValidator(cfg.Log, cfg.MinAge)
	cleaner := service.NewPatientCleaner(patientValidator, cfg.Log)

	cfg.Log.Info("Patient cleaner initialized", "min_age", cfg.MinAge)
	return cleaner
}
