// Package shared contains testing utilities shared between integration tests.
// This file provides common functions for setting up test environments,
// capturing output, and verifying the data directory layout.
package shared

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/noted/cmd"
	logger "github.com/PolarWolf314/noted/internal/logging"
	"github.com/spf13/cobra"
)

// SetupTestEnvironment makes tempDir the working directory, which is where
// noted keeps its data when no --data-dir is given.
func SetupTestEnvironment(t *testing.T, tempDir, originalWd string) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv(cmd.DataDirEnv, "")
	t.Setenv(cmd.ConfigEnv, "")

	// Change to temp directory
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	// Cleanup function to restore original state
	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		cmd.ResetGlobalState()
	})
}

// CaptureOutput captures both stdout and stderr during function execution.
func CaptureOutput(fn func() error) (string, error) {
	// Save original stdout and stderr
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	// Create pipes to capture output
	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	// Replace stdout and stderr
	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	// Channel to collect output
	outputChan := make(chan string, 2)

	// Start goroutines to read from pipes
	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stdoutReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stderrReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	// Execute the function
	err := fn()

	// Close writers to signal EOF
	stdoutWriter.Close()
	stderrWriter.Close()

	// Restore original stdout and stderr
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	// Collect output
	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// CreateTestCLI prepares the root command to run with args, reading stdin
// as the interactive input.
func CreateTestCLI(args []string, stdin string, verboseFlag, debugFlag bool) *cobra.Command {
	cmd.ResetGlobalState()

	// Initialize the logger with the test flags
	cmd.SetLogger(logger.Logger{
		Verbose: verboseFlag,
		Debug:   debugFlag,
	})

	// A nil slice makes cobra fall back to os.Args.
	args = append([]string{}, args...)
	if verboseFlag {
		args = append(args, "--verbose")
	}
	if debugFlag {
		args = append(args, "--debug")
	}

	root := cmd.RootCmd
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	return root
}

// RunSession runs the interactive menu over input and returns its output.
func RunSession(t *testing.T, input string) string {
	t.Helper()
	output, err := CaptureOutput(func() error {
		return CreateTestCLI(nil, input, false, false).Execute()
	})
	if err != nil {
		t.Fatalf("Interactive session failed: %v\nOutput: %s", err, output)
	}
	return output
}

// VerifyDataLayout verifies that the data directories were created.
func VerifyDataLayout(t *testing.T, dataDir string) {
	for _, dir := range []string{"notes", "auth", "key"} {
		if info, err := os.Stat(filepath.Join(dataDir, dir)); err != nil || !info.IsDir() {
			t.Errorf("%s directory was not created in %s", dir, dataDir)
		}
	}
}

// VerifyPasswordSet verifies that the password file exists.
func VerifyPasswordSet(t *testing.T, dataDir string) {
	path := filepath.Join(dataDir, "auth", "password.txt")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Password file was not created at %s", path)
	}
}

// InitializeDataDir runs a first session that sets password and exits.
func InitializeDataDir(t *testing.T, dataDir, password string) {
	RunSession(t, password+"\n7\n")
	VerifyDataLayout(t, dataDir)
	VerifyPasswordSet(t, dataDir)
}
