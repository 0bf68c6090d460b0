package image

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/archive"
)

// BuildOutput is invoked with incremental build progress messages
type BuildOutput func(message string)

// Engine builds container images
type Engine interface {
	Ping(ctx context.Context) error
	Build(ctx context.Context, contextDir, dockerfile, tag string, onOutput BuildOutput) error
	Close() error
}

// NewEngine creates a new image build engine backed by the Docker
// daemon resolved from the environment
func NewEngine() (Engine, error) {
	docker, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, err
	}
	return &engine{docker}, nil
}

type engine struct {
	docker *client.Client
}

func (e *engine) Ping(ctx context.Context) error {
	if _, err := e.docker.Ping(ctx); err != nil {
		return fmt.Errorf("failed to reach the docker daemon: %w", err)
	}
	return nil
}

// Build tars the build context and streams the daemon's build output.
// The first error message in the stream aborts the build; there is no
// partial-success state beyond the layers the daemon already cached.
func (e *engine) Build(ctx context.Context, contextDir, dockerfile, tag string, onOutput BuildOutput) error {
	buildCtx, err := archive.TarWithOptions(contextDir, &archive.TarOptions{})
	if err != nil {
		return fmt.Errorf("failed to create build context: %w", err)
	}
	defer buildCtx.Close()

	res, err := e.docker.ImageBuild(ctx, buildCtx, types.ImageBuildOptions{
		Tags:        []string{tag},
		Dockerfile:  dockerfile,
		Remove:      true,
		ForceRemove: true,
	})
	if err != nil {
		return fmt.Errorf("failed to build image %s: %w", tag, err)
	}
	defer res.Body.Close()

	return decodeBuildStream(res.Body, tag, onOutput)
}

func (e *engine) Close() error {
	return e.docker.Close()
}

func decodeBuildStream(body io.Reader, tag string, onOutput BuildOutput) error {
	decoder := json.NewDecoder(body)
	for {
		var msg buildMessage
		if err := decoder.Decode(&msg); err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("failed to decode build output: %w", err)
		}

		if errMsg := msg.errorMessage(); errMsg != "" {
			return fmt.Errorf("failed to build image %s: %s", tag, errMsg)
		}

		if line := msg.render(); line != "" && onOutput != nil {
			onOutput(line)
		}
	}
}
