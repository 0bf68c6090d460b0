package image

import (
	"strings"
	"testing"

	"github.com/fxrates/fxprov/internal/utils/test/assert"
	"github.com/fxrates/fxprov/internal/utils/test/mock"

	"github.com/spf13/afero"
)

func TestImageListHandler(t *testing.T) {
	t.Run("Should list the built-in image definitions", func(t *testing.T) {
		out, ui := mock.NewUI()

		cmd := &CommandList{fs: afero.NewMemMapFs()}
		assert.Nil(t, cmd.Handler(nil, ui))

		assert.Equal(t, strings.Join([]string{
			"01:23:45 UTC INFO  Found image definitions",
			"  Name        Tag                Base Image          ",
			"  ----------  -----------------  --------------------",
			"  fx-api      fx-api:latest      python:3.11-slim    ",
			"  fx-airflow  fx-airflow:latest  apache/airflow:2.7.3",
			"",
		}, "\n"), out.String())
	})

	t.Run("Should list definitions from a manifest", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		assert.Nil(t, afero.WriteFile(fs, "/manifest.yaml", []byte(strings.Join([]string{
			"images:",
			"  - name: fx-worker",
			"    base_image: python:3.11-slim",
		}, "\n")), 0644))

		out, ui := mock.NewUI()

		cmd := &CommandList{inputs: inputs{ManifestPath: "/manifest.yaml"}, fs: fs}
		assert.Nil(t, cmd.Handler(nil, ui))

		assert.True(t, strings.Contains(out.String(), "fx-worker"),
			"expected the manifest definition to be listed")
		assert.False(t, strings.Contains(out.String(), "fx-api"),
			"expected the built-in definitions to be replaced")
	})

	t.Run("Should surface a manifest that fails to parse", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		assert.Nil(t, afero.WriteFile(fs, "/manifest.yaml", []byte("images: [not a mapping]"), 0644))

		_, ui := mock.NewUI()

		cmd := &CommandList{inputs: inputs{ManifestPath: "/manifest.yaml"}, fs: fs}
		err := cmd.Handler(nil, ui)
		assert.NotNil(t, err)
		assert.True(t, strings.Contains(err.Error(), "failed to parse image manifest"),
			"expected a manifest parse error, got: %s", err)
	})
}
