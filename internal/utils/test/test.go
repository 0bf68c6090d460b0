package testutils

import (
	"os"
	"testing"
)

// MustSkipf skips a test suite, but panics if FXPROV_NO_SKIP_TEST is set
func MustSkipf(t *testing.T, format string, args ...interface{}) {
	if len(os.Getenv("FXPROV_NO_SKIP_TEST")) > 0 {
		panic("test was skipped, but FXPROV_NO_SKIP_TEST is set")
	}
	t.Skipf(format, args...)
}

// MongoServerURI returns the MongoDB server uri to use for testing
func MongoServerURI() string {
	if uri := os.Getenv("FXPROV_MONGODB_TEST_URI"); uri != "" {
		return uri
	}
	return "mongodb://localhost:27017"
}

// SkipUnlessMongoServerRunning skips tests unless a MongoDB server
// is advertised via FXPROV_MONGODB_TEST_URI
func SkipUnlessMongoServerRunning(t *testing.T) {
	if os.Getenv("FXPROV_MONGODB_TEST_URI") == "" {
		MustSkipf(t, "MongoDB server not configured, set FXPROV_MONGODB_TEST_URI to run")
	}
}

// SkipUnlessDockerRunning skips tests unless a Docker daemon
// is advertised via FXPROV_DOCKER_TEST
func SkipUnlessDockerRunning(t *testing.T) {
	if os.Getenv("FXPROV_DOCKER_TEST") == "" {
		MustSkipf(t, "Docker daemon not configured, set FXPROV_DOCKER_TEST to run")
	}
}
