package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/skorokithakis/dockrun/internal/config"
	"github.com/skorokithakis/dockrun/internal/ops"
	"github.com/skorokithakis/dockrun/internal/runtime"
	"github.com/skorokithakis/dockrun/internal/utils"
	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"
)

// options holds the global flags shared by every subcommand.
type options struct {
	configDir string
	runtime   string
	envFile   string
	dryRun    bool
	verbose   bool
}

// Execute runs the CLI and exits with the resulting status.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command tree for args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(context.Background())
	if err == nil {
		return 0
	}

	var exitErr *runtime.ExitError
	switch {
	case errors.As(err, &exitErr):
		logrus.Debugf("%v", exitErr)
		return exitErr.Code
	case errors.Is(err, errUsage):
		return 1
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

// errUsage marks errors whose usage message has already been printed.
var errUsage = errors.New("usage error")

func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "dockrun",
		Short: "Build, run and publish the project's container",
		Long: `Dockrun drives the Docker or Podman CLI for a single application using the
settings in config.yaml, config.local.yaml and a few environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(opts.verbose)
			if opts.envFile != "" {
				// Variables already in the environment win over the file.
				if err := godotenv.Load(opts.envFile); err != nil {
					return fmt.Errorf("failed to load env file: %w", err)
				}
			}
			return nil
		},
	}

	// Disable default completion command.
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configDir, "config-dir", "C", ".", "Directory containing config.yaml")
	flags.StringVar(&opts.runtime, "runtime", "", "Container runtime to use (docker or podman)")
	flags.StringVar(&opts.envFile, "env-file", "", "Load environment variables from a dotenv file")
	flags.BoolVarP(&opts.dryRun, "dry-run", "n", false, "Print runtime commands instead of running them")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newBuildCommand(opts),
		newRunCommand(opts),
		newStopCommand(opts),
		newTagCommand(opts),
		newPublishCommand(opts),
		newLogsCommand(opts),
		newPsCommand(opts),
		newCheckCommand(opts),
		newVersionCommand(),
	)

	return rootCmd
}

// setupLogging configures the package-level logrus logger.
func setupLogging(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors:    !utils.IsTerminal(os.Stderr),
		DisableTimestamp: true,
	})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// loadRuntime selects the container runtime from the global configuration.
func loadRuntime(cmd *cobra.Command, opts *options) (runtime.Runtime, error) {
	loader := config.NewLoader(opts.configDir)
	globalConfig, err := loader.LoadGlobalConfig(cmd.Flags().Lookup("runtime"))
	if err != nil {
		return nil, fmt.Errorf("failed to load global config: %w", err)
	}
	return runtime.New(globalConfig)
}

// loadOps resolves the project configuration and prepares the operations.
func loadOps(cmd *cobra.Command, opts *options) (*ops.Ops, error) {
	rt, err := loadRuntime(cmd, opts)
	if err != nil {
		return nil, err
	}

	cfg, err := config.NewLoader(opts.configDir).Load()
	if err != nil {
		return nil, err
	}
	logrus.Debugf("Resolved config for %s (image %s)", cfg.AppName, runtime.ImageTag(cfg))

	return ops.New(cfg, rt, runtime.NewCommandRunner(rt.Binary(), opts.dryRun)), nil
}
