package mongodb

import (
	"testing"

	"github.com/fxrates/fxprov/internal/utils/test/assert"

	"go.mongodb.org/mongo-driver/bson"
)

func TestCreateUserCommand(t *testing.T) {
	t.Run("Should build a createUser command with role grants scoped per database", func(t *testing.T) {
		cmd := createUserCommand(UserSpec{
			Username: "fx_user",
			Password: "fx_password",
			Grants: []RoleGrant{
				{Role: "readWrite", Database: "fx_rates"},
				{Role: "read", Database: "reporting"},
			},
		})

		assert.Match(t, bson.D{
			{Key: "createUser", Value: "fx_user"},
			{Key: "pwd", Value: "fx_password"},
			{Key: "roles", Value: bson.A{
				bson.D{{Key: "role", Value: "readWrite"}, {Key: "db", Value: "fx_rates"}},
				bson.D{{Key: "role", Value: "read"}, {Key: "db", Value: "reporting"}},
			}},
		}, cmd)
	})

	t.Run("Should build a createUser command with no roles when the user has no grants", func(t *testing.T) {
		cmd := createUserCommand(UserSpec{Username: "fx_user", Password: "fx_password"})

		assert.Match(t, bson.D{
			{Key: "createUser", Value: "fx_user"},
			{Key: "pwd", Value: "fx_password"},
			{Key: "roles", Value: bson.A{}},
		}, cmd)
	})
}
