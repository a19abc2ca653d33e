//go:build api

package testdb

import (
	"context"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// containerStartTimeout bounds how long we wait for a container to come up.
const containerStartTimeout = 2 * time.Minute

// MongoContainer wraps a MongoDB testcontainer for API tests.
type MongoContainer struct {
	Container *mongodb.MongoDBContainer
	URI       string
	Client    *mongo.Client
	Database  *mongo.Database
}

// SetupMongoDB starts a MongoDB testcontainer and connects a client to it.
// Lifecycle is managed by the caller (TestMain), not t.Cleanup.
func SetupMongoDB(ctx context.Context, dbName string) (*MongoContainer, error) {
	ctx, cancel := context.WithTimeout(ctx, containerStartTimeout)
	defer cancel()

	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		return nil, err
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &MongoContainer{
		Container: container,
		URI:       uri,
		Client:    client,
		Database:  client.Database(dbName),
	}, nil
}

// Cleanup disconnects the client and terminates the container.
func (mc *MongoContainer) Cleanup(ctx context.Context) error {
	if mc.Client != nil {
		_ = mc.Client.Disconnect(ctx)
	}
	if mc.Container != nil {
		return mc.Container.Terminate(ctx)
	}
	return nil
}

// CleanupCollections drops every collection in the test database so each
// test starts from an empty state.
func (mc *MongoContainer) CleanupCollections(ctx context.Context) error {
	collections, err := mc.Database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return err
	}
	for _, name := range collections {
		if err := mc.Database.Collection(name).Drop(ctx); err != nil {
			return err
		}
	}
	return nil
}
