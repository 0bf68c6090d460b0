package image_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fxrates/fxprov/internal/image"
	u "github.com/fxrates/fxprov/internal/utils/test"
	"github.com/fxrates/fxprov/internal/utils/test/assert"
)

func TestEngineBuildAgainstDaemon(t *testing.T) {
	u.SkipUnlessDockerRunning(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	engine, err := image.NewEngine()
	assert.Nil(t, err)
	defer engine.Close()

	assert.Nil(t, engine.Ping(ctx))

	contextDir, teardown, err := u.NewTempDir("engine_ext_test")
	assert.Nil(t, err)
	defer teardown()

	def := image.Definition{
		Name:      "fxprov-test",
		Tag:       "fxprov-test:latest",
		BaseImage: "busybox:latest",
		Command:   []string{"true"},
	}

	dockerfile, err := image.Render(def)
	assert.Nil(t, err)
	assert.Nil(t, os.WriteFile(filepath.Join(contextDir, def.DockerfileName()), []byte(dockerfile), 0644))

	var lines []string
	buildErr := engine.Build(ctx, contextDir, def.DockerfileName(), def.ImageTag(""), func(message string) {
		lines = append(lines, message)
	})
	assert.Nil(t, buildErr)
	assert.True(t, len(lines) > 0, "expected the daemon to stream build output")
}
