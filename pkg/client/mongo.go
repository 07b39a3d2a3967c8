package client

import (
	"context"
	"fmt"
	"patientcleaner/pkg/logger"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoClient struct {
	Client  *mongo.Client
	timeout time.Duration
}

// NewMongoClient connects and pings within connTimeout.
func NewMongoClient(ctx context.Context, log *logger.Logger, mongoURI string, connTimeout time.Duration) (*MongoClient, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI).SetConnectTimeout(connTimeout))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	log.Info("Successfully connected to MongoDB")
	return &MongoClient{Client: client, timeout: connTimeout}, nil
}

func (m *MongoClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.Client.Ping(ctx, readpref.Primary())
}

func (m *MongoClient) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()
	return m.Client.Disconnect(ctx)
}
