package log_test

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/PolarWolf314/noted/test/integration/shared"
)

// TestLogIntegration contains integration tests for the `noted log` command.
func TestLogIntegration(t *testing.T) {
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get original working directory: %v", err)
	}

	t.Run("LogWithNoAuditLog", func(t *testing.T) {
		testLogWithNoAuditLog(t, originalWd)
	})

	t.Run("LogShowsMenuOperations", func(t *testing.T) {
		testLogShowsMenuOperations(t, originalWd)
	})

	t.Run("LogWithLimitFlag", func(t *testing.T) {
		testLogWithLimitFlag(t, originalWd)
	})

	t.Run("LogWithOperationFilter", func(t *testing.T) {
		testLogWithOperationFilter(t, originalWd)
	})

	t.Run("LogWithJSONFormat", func(t *testing.T) {
		testLogWithJSONFormat(t, originalWd)
	})

	t.Run("LogWithInvalidDate", func(t *testing.T) {
		testLogWithInvalidDate(t, originalWd)
	})
}

func runLog(t *testing.T, args ...string) string {
	t.Helper()
	output, err := shared.CaptureOutput(func() error {
		return shared.CreateTestCLI(append([]string{"log"}, args...), "", false, false).Execute()
	})
	if err != nil {
		t.Errorf("Command failed unexpectedly: %v", err)
	}
	return output
}

func testLogWithNoAuditLog(t *testing.T, originalWd string) {
	tempDir := t.TempDir()
	shared.SetupTestEnvironment(t, tempDir, originalWd)

	output := runLog(t)

	if !strings.Contains(output, "No audit log found") {
		t.Errorf("Expected 'no audit log found' message not found in output: %s", output)
	}
}

func testLogShowsMenuOperations(t *testing.T, originalWd string) {
	tempDir := t.TempDir()
	shared.SetupTestEnvironment(t, tempDir, originalWd)
	shared.InitializeDataDir(t, tempDir, "pw")
	shared.RunSession(t, "1\ndiary\nvery private words\n2\npw\n1\n7\n")

	output := runLog(t)

	for _, op := range []string{"setup", "add", "view"} {
		if !strings.Contains(output, op) {
			t.Errorf("Expected %q operation in log output: %s", op, output)
		}
	}
	if !strings.Contains(output, "diary.txt") {
		t.Errorf("Expected note name in log output: %s", output)
	}
	if strings.Contains(output, "very private words") {
		t.Errorf("Log output must not contain note text: %s", output)
	}
}

func testLogWithLimitFlag(t *testing.T, originalWd string) {
	tempDir := t.TempDir()
	shared.SetupTestEnvironment(t, tempDir, originalWd)
	shared.InitializeDataDir(t, tempDir, "pw")
	shared.RunSession(t, "1\na\nx\n1\nb\ny\n1\nc\nz\n7\n")

	output := runLog(t, "-n", "1")

	addLines := 0
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if strings.Contains(line, "  add ") {
			addLines++
		}
	}
	if addLines != 1 {
		t.Errorf("Expected 1 add entry with -n 1, got %d. Output: %s", addLines, output)
	}
	if !strings.Contains(output, "c.txt") {
		t.Errorf("Expected the most recent entry, got: %s", output)
	}
}

func testLogWithOperationFilter(t *testing.T, originalWd string) {
	tempDir := t.TempDir()
	shared.SetupTestEnvironment(t, tempDir, originalWd)
	shared.InitializeDataDir(t, tempDir, "pw")
	shared.RunSession(t, "1\na\nx\n2\nbad\n7\n")

	output := runLog(t, "--operation", "unlock")

	if !strings.Contains(output, "unlock") || !strings.Contains(output, "denied") {
		t.Errorf("Expected denied unlock in output: %s", output)
	}
	if strings.Contains(output, "setup") || strings.Contains(output, "  add ") {
		t.Errorf("Filter let other operations through: %s", output)
	}
}

func testLogWithJSONFormat(t *testing.T, originalWd string) {
	tempDir := t.TempDir()
	shared.SetupTestEnvironment(t, tempDir, originalWd)
	shared.InitializeDataDir(t, tempDir, "pw")

	output := runLog(t, "--json")

	var entries []map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(output)), &entries); err != nil {
		t.Fatalf("Output is not a JSON array: %v\nOutput: %s", err, output)
	}
	if len(entries) != 1 || entries[0]["op"] != "setup" {
		t.Errorf("Expected a single setup entry, got: %v", entries)
	}
	if entries[0]["session"] == "" {
		t.Errorf("Expected a session ID in entry: %v", entries[0])
	}
}

func testLogWithInvalidDate(t *testing.T, originalWd string) {
	tempDir := t.TempDir()
	shared.SetupTestEnvironment(t, tempDir, originalWd)
	shared.InitializeDataDir(t, tempDir, "pw")

	output := runLog(t, "--since", "last week")

	if !strings.Contains(output, "invalid date format") {
		t.Errorf("Expected date format error in output: %s", output)
	}
}
