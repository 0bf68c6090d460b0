package image

import (
	"testing"

	"github.com/fxrates/fxprov/internal/utils/test/assert"

	"github.com/spf13/afero"
)

const testManifest = `images:
  - name: fx-api
    tag: fx-api:1.2.0
    base_image: python:3.11-slim
    workdir: /app
    requirements: requirements.txt
    copy:
      - source: app/
        target: ./app/
    expose: 8000
    command: ["uvicorn", "app.main:app", "--host", "0.0.0.0", "--port", "8000"]
  - name: fx-airflow
    base_image: apache/airflow:2.7.3
    system_packages: [build-essential]
    requirements: requirements.txt
    build_user: root
    runtime_user: airflow
`

func TestLoadManifest(t *testing.T) {
	t.Run("Should load image definitions from a yaml manifest", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		assert.Nil(t, afero.WriteFile(fs, "images.yaml", []byte(testManifest), 0600))

		definitions, err := LoadManifest(fs, "images.yaml")
		assert.Nil(t, err)

		assert.Equal(t, 2, len(definitions))
		assert.Match(t, Definition{
			Name:         "fx-api",
			Tag:          "fx-api:1.2.0",
			BaseImage:    "python:3.11-slim",
			WorkDir:      "/app",
			Requirements: "requirements.txt",
			Copy:         []CopyStep{{Source: "app/", Target: "./app/"}},
			Expose:       8000,
			Command:      []string{"uvicorn", "app.main:app", "--host", "0.0.0.0", "--port", "8000"},
		}, definitions[0])
		assert.Equal(t, "fx-airflow", definitions[1].Name)
	})

	t.Run("Should error on a missing manifest", func(t *testing.T) {
		_, err := LoadManifest(afero.NewMemMapFs(), "images.yaml")
		assert.NotNil(t, err)
	})

	t.Run("Should error on an unknown manifest field", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		assert.Nil(t, afero.WriteFile(fs, "images.yaml", []byte(`images:
  - name: fx-api
    base_image: python:3.11-slim
    entry_point: uvicorn
`), 0600))

		_, err := LoadManifest(fs, "images.yaml")
		assert.NotNil(t, err)
	})

	t.Run("Should error on a manifest without images", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		assert.Nil(t, afero.WriteFile(fs, "images.yaml", []byte("images: []\n"), 0600))

		_, err := LoadManifest(fs, "images.yaml")
		assert.Equal(t, "image manifest images.yaml contains no images", err.Error())
	})

	t.Run("Should error on a manifest image missing its base image", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		assert.Nil(t, afero.WriteFile(fs, "images.yaml", []byte(`images:
  - name: fx-api
`), 0600))

		_, err := LoadManifest(fs, "images.yaml")
		assert.Equal(t, "fx-api: an image definition must specify a base image", err.Error())
	})
}
