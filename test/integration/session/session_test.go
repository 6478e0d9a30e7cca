package session_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/noted/test/integration/shared"
)

// TestInteractiveSessionIntegration drives the root command through the menu.
func TestInteractiveSessionIntegration(t *testing.T) {
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get original working directory: %v", err)
	}

	t.Run("FirstRunCreatesLayout", func(t *testing.T) {
		testFirstRunCreatesLayout(t, originalWd)
	})

	t.Run("DiaryScenario", func(t *testing.T) {
		testDiaryScenario(t, originalWd)
	})

	t.Run("NotesAreStoredShifted", func(t *testing.T) {
		testNotesAreStoredShifted(t, originalWd)
	})

	t.Run("DataDirFromEnvironment", func(t *testing.T) {
		testDataDirFromEnvironment(t, originalWd)
	})

	t.Run("ConfigFileChangesLayout", func(t *testing.T) {
		testConfigFileChangesLayout(t, originalWd)
	})
}

func testFirstRunCreatesLayout(t *testing.T, originalWd string) {
	tempDir := t.TempDir()
	shared.SetupTestEnvironment(t, tempDir, originalWd)

	output := shared.RunSession(t, "secret\n7\n")

	if !strings.Contains(output, "Set a password for the app: Password set successfully!") {
		t.Errorf("Expected setup messages in output: %s", output)
	}
	if !strings.Contains(output, "Exiting...") {
		t.Errorf("Expected 'Exiting...' in output: %s", output)
	}
	shared.VerifyDataLayout(t, tempDir)
	shared.VerifyPasswordSet(t, tempDir)

	// A second run must not ask again.
	output = shared.RunSession(t, "7\n")
	if strings.Contains(output, "Set a password") {
		t.Errorf("Second run asked for a new password: %s", output)
	}
}

func testDiaryScenario(t *testing.T, originalWd string) {
	tempDir := t.TempDir()
	shared.SetupTestEnvironment(t, tempDir, originalWd)
	shared.InitializeDataDir(t, tempDir, "pw")

	output := shared.RunSession(t, "1\ndiary\nday one\n2\npw\n1\n4\n1\n1\n2\n1\n7\n")

	if !strings.Contains(output, "--- Note Content ---\nday one\n--------------------") {
		t.Errorf("Expected note content in output: %s", output)
	}
	if !strings.Contains(output, "Line deleted successfully!") {
		t.Errorf("Expected line deletion in output: %s", output)
	}
	if !strings.Contains(output, "--- Note Content ---\n--------------------") {
		t.Errorf("Expected empty note in output: %s", output)
	}

	data, err := os.ReadFile(filepath.Join(tempDir, "notes", "diary.txt"))
	if err != nil {
		t.Fatalf("Failed to read note: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("Expected empty note file, got %q", data)
	}
}

func testNotesAreStoredShifted(t *testing.T, originalWd string) {
	tempDir := t.TempDir()
	shared.SetupTestEnvironment(t, tempDir, originalWd)
	shared.InitializeDataDir(t, tempDir, "pw")

	shared.RunSession(t, "1\nshopping\nabc\n7\n")

	data, err := os.ReadFile(filepath.Join(tempDir, "notes", "shopping.txt"))
	if err != nil {
		t.Fatalf("Failed to read note: %v", err)
	}
	if string(data) != "def\n" {
		t.Errorf("Expected shifted line %q, got %q", "def\n", data)
	}

	password, err := os.ReadFile(filepath.Join(tempDir, "auth", "password.txt"))
	if err != nil {
		t.Fatalf("Failed to read password file: %v", err)
	}
	if string(password) != "sz" {
		t.Errorf("Expected shifted password %q, got %q", "sz", password)
	}
}

func testDataDirFromEnvironment(t *testing.T, originalWd string) {
	workDir := t.TempDir()
	dataDir := t.TempDir()
	shared.SetupTestEnvironment(t, workDir, originalWd)
	t.Setenv("NOTED_DATA_DIR", dataDir)

	shared.RunSession(t, "pw\n7\n")

	shared.VerifyDataLayout(t, dataDir)
	if _, err := os.Stat(filepath.Join(workDir, "notes")); !os.IsNotExist(err) {
		t.Errorf("notes/ should not be created in the working directory")
	}
}

func testConfigFileChangesLayout(t *testing.T, originalWd string) {
	tempDir := t.TempDir()
	shared.SetupTestEnvironment(t, tempDir, originalWd)

	config := "[storage]\nnotes_dir = \"journal\"\nnote_suffix = \".note\"\n"
	// #nosec G306 -- test fixture.
	if err := os.WriteFile(filepath.Join(tempDir, "noted.toml"), []byte(config), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	shared.RunSession(t, "pw\n1\ntrip\nday one\n7\n")

	if _, err := os.Stat(filepath.Join(tempDir, "journal", "trip.note")); err != nil {
		t.Errorf("Expected note in configured directory: %v", err)
	}
}
