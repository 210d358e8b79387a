// Package integration_test provides end-to-end tests for hookhub CLI commands.
// Tests compile the binary once via TestMain and run each test with an
// isolated HOOKHUB_HOME to ensure test independence.
package integration_test

import (
	"log"
	"os"
	"testing"

	"github.com/hookhub/hookhub/test/integration/harness"
)

func TestMain(m *testing.M) {
	_, err := harness.BuildBinary()
	if err != nil {
		log.Fatalf("Failed to build binary: %v", err)
	}

	code := m.Run()

	harness.CleanupBinary()

	os.Exit(code)
}
