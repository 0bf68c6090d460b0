package mongodb

import (
	"context"
	"errors"
	"fmt"
)

// RoleGrant is a permission binding scoping a role to one database
type RoleGrant struct {
	Role     string `json:"role" yaml:"role"`
	Database string `json:"db" yaml:"db"`
}

func (grant RoleGrant) String() string {
	return fmt.Sprintf("%s@%s", grant.Role, grant.Database)
}

// UserSpec describes a database user and its role grants
type UserSpec struct {
	Username string
	Password string
	Grants   []RoleGrant
}

// Plan describes the resources bootstrap must ensure exist
type Plan struct {
	Database    string
	User        UserSpec
	Collections []string
}

// set of plan validation errors
var (
	ErrMissingDatabase = errors.New("a database name must be provided")
	ErrMissingUsername = errors.New("a username must be provided")
	ErrMissingPassword = errors.New("a password must be provided")
	ErrMissingGrants   = errors.New("at least one role grant must be provided")
)

// Validate checks the plan for missing inputs and defaults any grant
// without an explicit database to the plan's target database
func (plan *Plan) Validate() error {
	if plan.Database == "" {
		return ErrMissingDatabase
	}
	if plan.User.Username == "" {
		return ErrMissingUsername
	}
	if plan.User.Password == "" {
		return ErrMissingPassword
	}
	if len(plan.User.Grants) == 0 {
		return ErrMissingGrants
	}

	for i, grant := range plan.User.Grants {
		if grant.Role == "" {
			return fmt.Errorf("role grant %d is missing a role", i)
		}
		if grant.Database == "" {
			plan.User.Grants[i].Database = plan.Database
		}
	}
	return nil
}

// Outcome is the result of ensuring a single resource
type Outcome string

// set of supported bootstrap outcomes
const (
	OutcomeCreated Outcome = "created"
	OutcomeExists  Outcome = "exists"
)

// CollectionResult is the bootstrap outcome for a single collection
type CollectionResult struct {
	Name    string
	Outcome Outcome
}

// Result is the bootstrap outcome for the whole plan
type Result struct {
	User        Outcome
	Collections []CollectionResult
}

// Bootstrap idempotently ensures the plan's user and collections exist.
// Existing resources are never modified: a user already present keeps
// whatever grants it has and is reported as such.
func Bootstrap(ctx context.Context, client Client, plan Plan) (Result, error) {
	if err := plan.Validate(); err != nil {
		return Result{}, err
	}

	if err := client.Ping(ctx); err != nil {
		return Result{}, fmt.Errorf("failed to reach the MongoDB server: %w", err)
	}

	var result Result

	userExists, err := client.UserExists(ctx, plan.Database, plan.User.Username)
	if err != nil {
		return Result{}, err
	}
	if userExists {
		result.User = OutcomeExists
	} else {
		if err := client.CreateUser(ctx, plan.Database, plan.User); err != nil {
			return Result{}, err
		}
		result.User = OutcomeCreated
	}

	result.Collections = make([]CollectionResult, 0, len(plan.Collections))
	for _, collection := range plan.Collections {
		collectionExists, err := client.CollectionExists(ctx, plan.Database, collection)
		if err != nil {
			return Result{}, err
		}
		if collectionExists {
			result.Collections = append(result.Collections, CollectionResult{collection, OutcomeExists})
			continue
		}
		if err := client.CreateCollection(ctx, plan.Database, collection); err != nil {
			return Result{}, err
		}
		result.Collections = append(result.Collections, CollectionResult{collection, OutcomeCreated})
	}

	return result, nil
}
