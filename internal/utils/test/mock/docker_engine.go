package mock

import (
	"context"

	"github.com/fxrates/fxprov/internal/image"
)

// DockerEngine is a mocked image build engine
type DockerEngine struct {
	image.Engine
	PingFn  func(ctx context.Context) error
	BuildFn func(ctx context.Context, contextDir, dockerfile, tag string, onOutput image.BuildOutput) error
	CloseFn func() error
}

// Ping calls the mocked Ping implementation if provided,
// otherwise the call falls back to the underlying image.Engine implementation.
// NOTE: this may panic if the underlying image.Engine is left undefined
func (de DockerEngine) Ping(ctx context.Context) error {
	if de.PingFn != nil {
		return de.PingFn(ctx)
	}
	return de.Engine.Ping(ctx)
}

// Build calls the mocked Build implementation if provided,
// otherwise the call falls back to the underlying image.Engine implementation.
// NOTE: this may panic if the underlying image.Engine is left undefined
func (de DockerEngine) Build(ctx context.Context, contextDir, dockerfile, tag string, onOutput image.BuildOutput) error {
	if de.BuildFn != nil {
		return de.BuildFn(ctx, contextDir, dockerfile, tag, onOutput)
	}
	return de.Engine.Build(ctx, contextDir, dockerfile, tag, onOutput)
}

// Close calls the mocked Close implementation if provided,
// otherwise the call falls back to the underlying image.Engine implementation.
// NOTE: this may panic if the underlying image.Engine is left undefined
func (de DockerEngine) Close() error {
	if de.CloseFn != nil {
		return de.CloseFn()
	}
	return de.Engine.Close()
}
