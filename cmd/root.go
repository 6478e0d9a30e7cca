package cmd

import (
	"os"

	"github.com/PolarWolf314/noted/internal/configs"
	logger "github.com/PolarWolf314/noted/internal/logging"
	"github.com/PolarWolf314/noted/internal/session"
	"github.com/PolarWolf314/noted/internal/utils"
	"github.com/PolarWolf314/noted/internal/workflows"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Environment variables read when the matching flag is not given.
const (
	DataDirEnv = "NOTED_DATA_DIR"
	ConfigEnv  = "NOTED_CONFIG"
)

// bannerTitle is rendered above the menu when display.banner is on.
const bannerTitle = "noted"

var (
	verbose    bool
	debug      bool
	dataDir    string
	configPath string
	Logger     logger.Logger

	// settings are resolved once per invocation in PersistentPreRunE.
	settings *configs.Settings

	RootCmd = &cobra.Command{
		Use:   "noted",
		Short: "Keep obfuscated text notes behind a password",
		Long: `noted keeps plain text notes in a notes/ directory next to a single
password. Run it without a command to open the interactive menu.

Every line of a note is stored shifted so it is not readable at a glance.
This is obfuscation, not encryption.

Files (relative to --data-dir, default the working directory):
  notes/              one file per note
  auth/password.txt   the shared password
  key/                reserved
  audit.jsonl         log of operations, without note text

Environment:
  NOTED_DATA_DIR   data directory when --data-dir is not given
  NOTED_CONFIG     config file when --config is not given`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: loadSettings,
		RunE:              runRoot,
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding notes/, auth/ and key/")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a noted.toml or noted.yaml file")

	RootCmd.AddCommand(logCmd)
	RootCmd.AddCommand(doctorCmd)
}

func loadSettings(cmd *cobra.Command, args []string) error {
	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
	}
	Logger.Debugf("Initializing %s with verbose=%t, debug=%t", cmd.Name(), verbose, debug)

	flags := cmd.Flags()
	dir := flagOrEnv(flags, "data-dir", DataDirEnv)
	cfg := flagOrEnv(flags, "config", ConfigEnv)

	s, err := configs.LoadSettings(dir, cfg)
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to load settings: %v", err)
	}
	settings = s

	Logger.Debugf("Data directory: %s", settings.DataDir)
	Logger.Debugf("Layout:%s", utils.FormatPaths([]string{settings.NotesDir, settings.PasswordPath, settings.KeyDir}))
	if settings.ConfigPath != "" {
		Logger.Infof("Using config file %s", settings.ConfigPath)
	}
	return nil
}

// flagOrEnv returns the flag's value when it was set on the command line and
// the environment variable otherwise.
func flagOrEnv(flags *pflag.FlagSet, name, env string) string {
	if f := flags.Lookup(name); f != nil && f.Changed {
		return f.Value.String()
	}
	return os.Getenv(env)
}

func runRoot(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting interactive session")

	in := cmd.InOrStdin()
	opts := session.Options{
		In:     in,
		Out:    cmd.OutOrStdout(),
		Logger: Logger,
	}
	if f, ok := in.(*os.File); ok {
		opts.Terminal = f
	}
	if settings.Banner {
		opts.Banner = bannerTitle
	}

	loop := session.New(workflows.NewEnv(settings), opts)
	return loop.Run(cmd.Context())
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	dataDir = ""
	configPath = ""
	settings = nil
	resetLogCommandState()
	resetDoctorCommandState()

	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	RootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range []*cobra.Command{RootCmd, logCmd, doctorCmd} {
		c.Flags().VisitAll(reset)
	}
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
