package cli_test

import (
	"os"
	"testing"

	"github.com/fxrates/fxprov/internal/cli"
	"github.com/fxrates/fxprov/internal/utils/test/assert"
	"github.com/fxrates/fxprov/internal/utils/test/mock"
)

func TestProfileDeployment(t *testing.T) {
	t.Run("Should fall back to the platform defaults when nothing is stored", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "profile_test")
		defer teardown()

		deployment := profile.GetDeployment()
		assert.Equal(t, cli.Deployment{
			ServerURI:    cli.DefaultServerURI,
			AuthDatabase: cli.DefaultAuthDatabase,
		}, deployment)
	})

	t.Run("Should round trip the stored deployment targets", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "profile_test")
		defer teardown()

		deployment := cli.Deployment{
			ServerURI:    "mongodb://localhost:27018",
			AuthDatabase: "fx_rates_staging",
			Registry:     "registry.fxrates.io",
		}
		profile.MergeDeployment(deployment)

		assert.Equal(t, deployment, profile.GetDeployment())
	})
}

func TestProfileSave(t *testing.T) {
	t.Run("Should write the profile to its config path", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "profile_test")
		defer teardown()

		profile.MergeDeployment(cli.Deployment{ServerURI: "mongodb://localhost:27018"})
		assert.Nil(t, profile.Save())

		_, err := os.Stat(profile.Path())
		assert.Nil(t, err)
	})

	t.Run("Should load what a previous profile saved", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "profile_test")
		defer teardown()

		profile.MergeDeployment(cli.Deployment{AuthDatabase: "fx_rates_staging"})
		assert.Nil(t, profile.Save())

		reloaded, err := cli.NewProfile(profile.Name)
		assert.Nil(t, err)
		assert.Nil(t, reloaded.Load())

		assert.Equal(t, "fx_rates_staging", reloaded.GetDeployment().AuthDatabase)
	})
}
