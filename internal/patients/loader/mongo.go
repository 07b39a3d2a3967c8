package loader

import (
	"context"
	"fmt"
	apperrors "patientcleaner/pkg/errors"
	"patientcleaner/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoLoader struct {
	collection *mongo.Collection
}

func NewMongoLoader(client *mongo.Client, databaseName, collectionName string) *MongoLoader {
	return &MongoLoader{
		collection: client.Database(databaseName).Collection(collectionName),
	}
}

// Read returns every document in the collection as a raw record, in natural
// insertion order.
func (l *MongoLoader) Read(ctx context.Context) ([]model.RawPatient, error) {
	source := fmt.Sprintf("mongodb collection %s", l.collection.Name())

	opts := options.Find().SetSort(bson.D{{Key: "$natural", Value: 1}})
	cursor, err := l.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, apperrors.SourceUnavailable(source, err)
	}
	defer cursor.Close(ctx)

	records := []model.RawPatient{}
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			records = append(records, nil)
			continue
		}
		records = append(records, toRawPatient(doc))
	}

	if err := cursor.Err(); err != nil {
		return nil, apperrors.SourceUnavailable(source, err)
	}
	return records, nil
}

func toRawPatient(doc bson.M) model.RawPatient {
	record := make(model.RawPatient, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		record[k] = v
	}
	return record
}
