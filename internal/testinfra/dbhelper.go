package testinfra

import (
	"context"
	"os"
	"sync"
	"testing"
)

// EnvTestDatabaseURL points integration tests at an existing server instead
// of a container.
const EnvTestDatabaseURL = "OGMI_TEST_DATABASE_URL"

var (
	containerOnce sync.Once
	containerConn string
	containerErr  error
)

func sharedContainer() (string, error) {
	containerOnce.Do(func() {
		ctr, err := StartPostgres(context.Background())
		if err != nil {
			containerErr = err
			return
		}
		containerConn = ctr.ConnString
	})
	return containerConn, containerErr
}

// RequireDatabase returns a connection string for integration tests.
// Priority: OGMI_TEST_DATABASE_URL > shared testcontainer > skip.
// Skipped in -short mode.
func RequireDatabase(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if connString := os.Getenv(EnvTestDatabaseURL); connString != "" {
		return connString
	}

	connString, err := sharedContainer()
	if err != nil {
		t.Skipf("%s not set and Docker unavailable: %v", EnvTestDatabaseURL, err)
	}
	return connString
}
