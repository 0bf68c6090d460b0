package mock

import (
	"testing"

	"github.com/fxrates/fxprov/internal/cli"
	u "github.com/fxrates/fxprov/internal/utils/test"
	"github.com/fxrates/fxprov/internal/utils/test/assert"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewProfile returns a new CLI profile with a random name
func NewProfile(t *testing.T) *cli.Profile {
	t.Helper()
	profile, err := cli.NewProfile(primitive.NewObjectID().Hex())
	assert.Nil(t, err)
	return profile
}

// NewProfileFromTmpDir returns a new CLI profile with a random name
// homed in a temporary directory, along with the associated cleanup function
func NewProfileFromTmpDir(t *testing.T, name string) (*cli.Profile, func()) {
	t.Helper()

	tmpDir, teardown, err := u.NewTempDir(name)
	assert.Nil(t, err)

	_, resetHomeDir := u.SetupHomeDir(tmpDir)

	profile := NewProfile(t)

	return profile,
		func() {
			resetHomeDir()
			teardown()
		}
}
