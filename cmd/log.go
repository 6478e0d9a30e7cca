package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/PolarWolf314/noted/internal/audit"
	nerrors "github.com/PolarWolf314/noted/internal/errors"
	"github.com/PolarWolf314/noted/internal/ui"
	"github.com/PolarWolf314/noted/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	logLimit     int
	logReverse   bool
	logSession   string
	logOperation string
	logNote      string
	logSince     string
	logUntil     string
	logOneline   bool
	logJSON      bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of entries shown")
	logCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent entries first")
	logCmd.Flags().StringVar(&logSession, "session", "", "filter by session ID prefix")
	logCmd.Flags().StringVar(&logOperation, "operation", "", "filter by operation type (comma-separated)")
	logCmd.Flags().StringVar(&logNote, "note", "", "filter by note file name")
	logCmd.Flags().StringVar(&logSince, "since", "", "show entries after date (YYYY-MM-DD)")
	logCmd.Flags().StringVar(&logUntil, "until", "", "show entries before date (YYYY-MM-DD)")
	logCmd.Flags().BoolVar(&logOneline, "oneline", false, "compact one-line format")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
}

// resetLogCommandState resets the log command's global state for testing.
func resetLogCommandState() {
	logLimit = 0
	logReverse = false
	logSession = ""
	logOperation = ""
	logNote = ""
	logSince = ""
	logUntil = ""
	logOneline = false
	logJSON = false
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View the audit log",
	Long: `Displays the audit log of note operations.

Shows which session did what to which note and when. Note text and
passwords are never logged. Use filters to narrow down the results.

Operations: setup, unlock, add, view, delete, delete_line, edit_line,
change_password.

Examples:
  noted log                              # View full log
  noted log -n 10                        # Last 10 entries
  noted log --reverse                    # Most recent first
  noted log --operation add,edit_line    # Filter by operation
  noted log --note diary.txt             # Filter by note
  noted log --since 2024-01-01           # Filter by date
  noted log --json                       # JSON output`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting log command")
	if !settings.AuditEnabled {
		Logger.WarnfUser("Auditing is disabled; no new entries are being recorded")
	}

	spinner, cleanup := startSpinner("Loading audit log...", verbose)
	defer cleanup()

	opts := workflows.LogOptions{
		Limit:      logLimit,
		Reverse:    logReverse,
		Session:    logSession,
		Operations: logOperation,
		Note:       logNote,
		Since:      logSince,
		Until:      logUntil,
	}

	result, err := workflows.Log(cmd.Context(), workflows.NewEnv(settings), opts)
	if err != nil {
		spinner.FinalMSG = formatLogError(err)
		if isLogUnexpectedError(err) {
			return err
		}
		return nil
	}

	Logger.Debugf("Parsed %d entries from audit log", result.TotalEntriesBeforeFilter)
	Logger.Debugf("After filtering: %d entries", len(result.Entries))

	spinner.FinalMSG = ""
	if len(result.Entries) == 0 {
		if result.TotalEntriesBeforeFilter == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No audit log entries found.")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No audit log entries found matching the filters.")
		}
		return nil
	}

	if logJSON {
		return outputLogJSON(cmd, result.Entries)
	}

	if logOneline {
		outputLogOneline(cmd, result.Entries)
		return nil
	}

	outputLogDefault(cmd, result.Entries)
	return nil
}

// formatLogError formats a log error for display to the user.
func formatLogError(err error) string {
	switch {
	case errors.Is(err, nerrors.ErrNoAuditLog):
		return ui.Info.Sprint("ℹ") + " No audit log found. Operations are logged once you use the menu.\n"

	case errors.Is(err, nerrors.ErrInvalidDateFormat):
		return ui.Error.Sprint("✗") + " " + err.Error()

	default:
		return ui.Error.Sprint("✗") + " Failed to read audit log: " + err.Error()
	}
}

// isLogUnexpectedError returns true if the error is unexpected and should cause a non-zero exit.
func isLogUnexpectedError(err error) bool {
	switch {
	case errors.Is(err, nerrors.ErrNoAuditLog),
		errors.Is(err, nerrors.ErrInvalidDateFormat):
		return false
	default:
		return true
	}
}

func outputLogJSON(cmd *cobra.Command, entries []audit.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries to JSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func outputLogOneline(cmd *cobra.Command, entries []audit.Entry) {
	for _, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
			workflows.FormatDate(e.Timestamp), workflows.ShortSession(e.Session), e.Operation, workflows.FormatDetails(e))
	}
}

func outputLogDefault(cmd *cobra.Command, entries []audit.Entry) {
	for _, e := range entries {
		datetime := workflows.FormatDateTime(e.Timestamp)
		details := workflows.FormatDetails(e)
		fmt.Fprintf(cmd.OutOrStdout(), "%-19s  %-8s  %-15s  %-6s  %s\n",
			datetime, workflows.ShortSession(e.Session), e.Operation, outcomeLabel(e.Outcome), details)
	}
}

func outcomeLabel(outcome string) string {
	switch outcome {
	case audit.OutcomeDenied:
		return ui.Warning.Sprint(outcome)
	case audit.OutcomeFailed:
		return ui.Error.Sprint(outcome)
	default:
		return outcome
	}
}
