package game

import (
	"io"
	"log"
	"os"
	"testing"
)

// TestMain keeps session logging off the test output.
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestSessionLogsDiscarded(t *testing.T) {
	newTestSession(t).Reset()

	if output := log.Writer(); output != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", output)
	}
}
