package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/PolarWolf314/noted/internal/ui"
	"github.com/PolarWolf314/noted/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	doctorJSONOutput bool
	// doctorExitFunc is the function called to exit with a specific code.
	// Can be overridden for testing.
	doctorExitFunc = os.Exit
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSONOutput, "json", false, "output in JSON format")
}

func resetDoctorCommandState() {
	doctorJSONOutput = false
	doctorExitFunc = os.Exit
}

// SetDoctorExitFunc sets the exit function for testing purposes.
func SetDoctorExitFunc(f func(int)) {
	doctorExitFunc = f
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run health checks on the data directory",
	Long: `Runs a series of health checks on the data directory and reports issues.

The doctor command checks:
  - The notes, auth and key directories exist
  - A password is set, is a single line and is private to you
  - Every note can be read
  - No files without the note suffix hide in notes/
  - The audit log can be read

It never asks for the password and never prints note text.

Exit codes:
  0 - All checks passed
  1 - Warnings found (non-critical issues)
  2 - Errors found (critical issues)

Use --json for machine-readable output.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting doctor command")

	spinner, cleanup := startSpinner("Running health checks...", verbose)
	defer cleanup()

	result, err := workflows.Doctor(cmd.Context(), workflows.NewEnv(settings), workflows.DoctorOptions{})
	if err != nil {
		spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to run health checks: " + err.Error()
		return err
	}

	for _, check := range result.Checks {
		Logger.Debugf("Check %s: status=%s, message=%s", check.Name, check.Status.String(), check.Message)
	}

	out := cmd.OutOrStdout()
	if doctorJSONOutput {
		spinner.FinalMSG = ""
		if err := outputDoctorJSON(out, result); err != nil {
			return err
		}
	} else {
		printDoctorResults(out, result)
		switch {
		case result.Summary.Errors > 0:
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Health checks completed with errors"
		case result.Summary.Warnings > 0:
			spinner.FinalMSG = ui.Warning.Sprint("⚠") + " Health checks completed with warnings"
		default:
			spinner.FinalMSG = ui.Success.Sprint("✓") + " Health checks completed"
		}
	}

	// The spinner must print its final message before the process exits.
	switch {
	case result.Summary.Errors > 0:
		cleanup()
		doctorExitFunc(2)
	case result.Summary.Warnings > 0:
		cleanup()
		doctorExitFunc(1)
	}
	return nil
}

// outputDoctorJSON outputs the result as JSON.
func outputDoctorJSON(out io.Writer, result *workflows.DoctorResult) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// printDoctorResults prints the doctor results in a human-readable format.
func printDoctorResults(out io.Writer, result *workflows.DoctorResult) {
	fmt.Fprintf(out, "Running health checks in %s...\n", ui.Path.Sprint(settings.DataDir))
	fmt.Fprintln(out)

	for _, check := range result.Checks {
		var statusIcon string
		switch check.Status {
		case workflows.CheckPass:
			statusIcon = ui.Success.Sprint("✓")
		case workflows.CheckWarning:
			statusIcon = ui.Warning.Sprint("⚠")
		case workflows.CheckError:
			statusIcon = ui.Error.Sprint("✗")
		}
		fmt.Fprintf(out, "%s %s\n", statusIcon, check.Message)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Summary: %d passed", result.Summary.Passed)
	if result.Summary.Warnings > 0 {
		fmt.Fprintf(out, ", %s", ui.Warning.Sprint(fmt.Sprintf("%d warning(s)", result.Summary.Warnings)))
	}
	if result.Summary.Errors > 0 {
		fmt.Fprintf(out, ", %s", ui.Error.Sprint(fmt.Sprintf("%d error(s)", result.Summary.Errors)))
	}
	fmt.Fprintln(out)

	if len(result.Suggestions) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Suggestions:")
		for _, suggestion := range result.Suggestions {
			fmt.Fprintf(out, "  %s %s\n", ui.Info.Sprint("→"), suggestion)
		}
	}
}
