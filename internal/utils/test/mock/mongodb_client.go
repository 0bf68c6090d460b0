package mock

import (
	"context"

	"github.com/fxrates/fxprov/internal/mongodb"
)

// MongoDBClient is a mocked MongoDB admin client
type MongoDBClient struct {
	mongodb.Client
	PingFn             func(ctx context.Context) error
	UserExistsFn       func(ctx context.Context, database, username string) (bool, error)
	CreateUserFn       func(ctx context.Context, database string, user mongodb.UserSpec) error
	CollectionExistsFn func(ctx context.Context, database, collection string) (bool, error)
	CreateCollectionFn func(ctx context.Context, database, collection string) error
	CloseFn            func(ctx context.Context) error
}

// Ping calls the mocked Ping implementation if provided,
// otherwise the call falls back to the underlying mongodb.Client implementation.
// NOTE: this may panic if the underlying mongodb.Client is left undefined
func (mc MongoDBClient) Ping(ctx context.Context) error {
	if mc.PingFn != nil {
		return mc.PingFn(ctx)
	}
	return mc.Client.Ping(ctx)
}

// UserExists calls the mocked UserExists implementation if provided,
// otherwise the call falls back to the underlying mongodb.Client implementation.
// NOTE: this may panic if the underlying mongodb.Client is left undefined
func (mc MongoDBClient) UserExists(ctx context.Context, database, username string) (bool, error) {
	if mc.UserExistsFn != nil {
		return mc.UserExistsFn(ctx, database, username)
	}
	return mc.Client.UserExists(ctx, database, username)
}

// CreateUser calls the mocked CreateUser implementation if provided,
// otherwise the call falls back to the underlying mongodb.Client implementation.
// NOTE: this may panic if the underlying mongodb.Client is left undefined
func (mc MongoDBClient) CreateUser(ctx context.Context, database string, user mongodb.UserSpec) error {
	if mc.CreateUserFn != nil {
		return mc.CreateUserFn(ctx, database, user)
	}
	return mc.Client.CreateUser(ctx, database, user)
}

// CollectionExists calls the mocked CollectionExists implementation if provided,
// otherwise the call falls back to the underlying mongodb.Client implementation.
// NOTE: this may panic if the underlying mongodb.Client is left undefined
func (mc MongoDBClient) CollectionExists(ctx context.Context, database, collection string) (bool, error) {
	if mc.CollectionExistsFn != nil {
		return mc.CollectionExistsFn(ctx, database, collection)
	}
	return mc.Client.CollectionExists(ctx, database, collection)
}

// CreateCollection calls the mocked CreateCollection implementation if provided,
// otherwise the call falls back to the underlying mongodb.Client implementation.
// NOTE: this may panic if the underlying mongodb.Client is left undefined
func (mc MongoDBClient) CreateCollection(ctx context.Context, database, collection string) error {
	if mc.CreateCollectionFn != nil {
		return mc.CreateCollectionFn(ctx, database, collection)
	}
	return mc.Client.CreateCollection(ctx, database, collection)
}

// Close calls the mocked Close implementation if provided,
// otherwise the call falls back to the underlying mongodb.Client implementation.
// NOTE: this may panic if the underlying mongodb.Client is left undefined
func (mc MongoDBClient) Close(ctx context.Context) error {
	if mc.CloseFn != nil {
		return mc.CloseFn(ctx)
	}
	return mc.Client.Close(ctx)
}
