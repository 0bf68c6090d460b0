package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// Client is a MongoDB admin client
type Client interface {
	Ping(ctx context.Context) error

	UserExists(ctx context.Context, database, username string) (bool, error)
	CreateUser(ctx context.Context, database string, user UserSpec) error

	CollectionExists(ctx context.Context, database, collection string) (bool, error)
	CreateCollection(ctx context.Context, database, collection string) error

	Close(ctx context.Context) error
}

// Connect creates a new MongoDB admin client connected to the specified server
func Connect(ctx context.Context, serverURI string) (Client, error) {
	mongoClient, err := mongo.Connect(ctx, options.Client().
		ApplyURI(serverURI).
		SetConnectTimeout(connectTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", serverURI, err)
	}
	return &client{mongoClient}, nil
}

type client struct {
	mongoClient *mongo.Client
}

func (c *client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	return c.mongoClient.Ping(ctx, readpref.Primary())
}

func (c *client) UserExists(ctx context.Context, database, username string) (bool, error) {
	res := c.mongoClient.Database(database).RunCommand(ctx, bson.D{
		{Key: "usersInfo", Value: username},
	})

	var info usersInfo
	if err := res.Decode(&info); err != nil {
		return false, fmt.Errorf("failed to look up user %q: %w", username, err)
	}
	return len(info.Users) > 0, nil
}

func (c *client) CreateUser(ctx context.Context, database string, user UserSpec) error {
	res := c.mongoClient.Database(database).RunCommand(ctx, createUserCommand(user))
	if err := res.Err(); err != nil {
		return fmt.Errorf("failed to create user %q: %w", user.Username, err)
	}
	return nil
}

func (c *client) CollectionExists(ctx context.Context, database, collection string) (bool, error) {
	names, err := c.mongoClient.Database(database).ListCollectionNames(ctx, bson.D{
		{Key: "name", Value: collection},
	})
	if err != nil {
		return false, fmt.Errorf("failed to look up collection %q: %w", collection, err)
	}
	return len(names) > 0, nil
}

func (c *client) CreateCollection(ctx context.Context, database, collection string) error {
	if err := c.mongoClient.Database(database).CreateCollection(ctx, collection); err != nil {
		return fmt.Errorf("failed to create collection %q: %w", collection, err)
	}
	return nil
}

func (c *client) Close(ctx context.Context) error {
	return c.mongoClient.Disconnect(ctx)
}

type usersInfo struct {
	Users []bson.M `bson:"users"`
}

func createUserCommand(user UserSpec) bson.D {
	roles := make(bson.A, 0, len(user.Grants))
	for _, grant := range user.Grants {
		roles = append(roles, bson.D{
			{Key: "role", Value: grant.Role},
			{Key: "db", Value: grant.Database},
		})
	}

	return bson.D{
		{Key: "createUser", Value: user.Username},
		{Key: "pwd", Value: user.Password},
		{Key: "roles", Value: roles},
	}
}
