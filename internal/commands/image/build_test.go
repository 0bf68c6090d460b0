package image

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fxrates/fxprov/internal/image"
	"github.com/fxrates/fxprov/internal/utils/test/assert"
	"github.com/fxrates/fxprov/internal/utils/test/mock"

	"github.com/spf13/afero"
)

func TestImageBuildHandler(t *testing.T) {
	t.Run("Should render the Dockerfile into the context and build the image", func(t *testing.T) {
		fs := afero.NewMemMapFs()

		var builtDockerfile, builtTag, builtContextDir string
		engine := mock.DockerEngine{
			PingFn: func(ctx context.Context) error { return nil },
			BuildFn: func(ctx context.Context, contextDir, dockerfile, tag string, onOutput image.BuildOutput) error {
				builtContextDir = contextDir
				builtDockerfile = dockerfile
				builtTag = tag
				onOutput("Step 1/5 : FROM python:3.11-slim")
				return nil
			},
			CloseFn: func() error { return nil },
		}

		out, ui := mock.NewUI()

		cmd := &CommandBuild{
			inputs: inputs{Names: []string{image.NameAPI}, ContextDir: "/ctx"},
			engine: engine,
			fs:     fs,
		}
		assert.Nil(t, cmd.Handler(nil, ui))

		assert.Equal(t, "/ctx", builtContextDir)
		assert.Equal(t, "Dockerfile.fx-api", builtDockerfile)
		assert.Equal(t, "fx-api:latest", builtTag)

		dockerfile, err := afero.ReadFile(fs, "/ctx/Dockerfile.fx-api")
		assert.Nil(t, err)
		assert.True(t, strings.HasPrefix(string(dockerfile), "FROM python:3.11-slim\n"),
			"expected the rendered Dockerfile to start from the api base image")

		assert.Equal(t, "01:23:45 UTC INFO  Successfully built image fx-api:latest\n", out.String())
	})

	t.Run("Should prefix image tags with the configured registry", func(t *testing.T) {
		var builtTag string
		engine := mock.DockerEngine{
			PingFn: func(ctx context.Context) error { return nil },
			BuildFn: func(ctx context.Context, contextDir, dockerfile, tag string, onOutput image.BuildOutput) error {
				builtTag = tag
				return nil
			},
			CloseFn: func() error { return nil },
		}

		_, ui := mock.NewUI()

		cmd := &CommandBuild{
			inputs: inputs{Names: []string{image.NameAPI}, ContextDir: "/ctx", Registry: "registry.fxrates.io"},
			engine: engine,
			fs:     afero.NewMemMapFs(),
		}
		assert.Nil(t, cmd.Handler(nil, ui))

		assert.Equal(t, "registry.fxrates.io/fx-api:latest", builtTag)
	})

	t.Run("Should fail fast when the docker daemon is unreachable", func(t *testing.T) {
		engine := mock.DockerEngine{
			PingFn: func(ctx context.Context) error {
				return errors.New("failed to reach the docker daemon: connection refused")
			},
			BuildFn: func(ctx context.Context, contextDir, dockerfile, tag string, onOutput image.BuildOutput) error {
				t.Fatal("expected no build to run")
				return nil
			},
			CloseFn: func() error { return nil },
		}

		_, ui := mock.NewUI()

		cmd := &CommandBuild{
			inputs: inputs{ContextDir: "/ctx"},
			engine: engine,
			fs:     afero.NewMemMapFs(),
		}
		err := cmd.Handler(nil, ui)
		assert.Equal(t, "failed to reach the docker daemon: connection refused", err.Error())
	})

	t.Run("Should surface a build failure", func(t *testing.T) {
		engine := mock.DockerEngine{
			PingFn: func(ctx context.Context) error { return nil },
			BuildFn: func(ctx context.Context, contextDir, dockerfile, tag string, onOutput image.BuildOutput) error {
				return errors.New("failed to build image fx-api:latest: exit status 1")
			},
			CloseFn: func() error { return nil },
		}

		out, ui := mock.NewUI()

		cmd := &CommandBuild{
			inputs: inputs{Names: []string{image.NameAPI}, ContextDir: "/ctx"},
			engine: engine,
			fs:     afero.NewMemMapFs(),
		}
		err := cmd.Handler(nil, ui)
		assert.Equal(t, "failed to build image fx-api:latest: exit status 1", err.Error())
		assert.Equal(t, "", out.String())
	})

	t.Run("Should reject an unknown image definition name", func(t *testing.T) {
		engine := mock.DockerEngine{
			PingFn: func(ctx context.Context) error {
				t.Fatal("expected no daemon round trip")
				return nil
			},
			CloseFn: func() error { return nil },
		}

		_, ui := mock.NewUI()

		cmd := &CommandBuild{
			inputs: inputs{Names: []string{"fx-web"}, ContextDir: "/ctx"},
			engine: engine,
			fs:     afero.NewMemMapFs(),
		}
		err := cmd.Handler(nil, ui)
		assert.Equal(t, `unknown image definition "fx-web", expected one of [fx-api, fx-airflow]`, err.Error())
	})
}
