// Package logger provides leveled logging for noted commands.
//
// Verbosity is controlled by the root command's flags:
//
//   - --verbose: shows info and warning messages
//   - --debug: shows everything, including the underlying cause of errors
//     that the interactive loop reports with a short generic message
//
// All diagnostics go to stderr by default so they never mix with the menu and
// note content printed on stdout.
//
// # Log Methods
//
//	Logger.Infof()           // Shown with --verbose or --debug
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Shown with --verbose or --debug
//	Logger.WarnfUser()       // Always shown
//	Logger.Errorf()          // Shown with --debug
//	Logger.ErrorfAndReturn() // Errorf, then returns the error
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Debugf("appending to %s", filename)
package logger
