// Package cmd contains the command-line interface definitions and execution
// logic for hubsync. It wires the profile catalog, the registry tags client,
// the container runtime executor, and the notification sink together and
// exposes them to the add, edit, pull, push, clean, and sync subcommands.
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hubsync/hubsync/internal/flags"
	"github.com/hubsync/hubsync/internal/meta"
	"github.com/hubsync/hubsync/pkg/config"
	"github.com/hubsync/hubsync/pkg/notifications"
	"github.com/hubsync/hubsync/pkg/profile"
	"github.com/hubsync/hubsync/pkg/registry"
	"github.com/hubsync/hubsync/pkg/runtime"
)

// configPath is the catalog location resolved from --config or
// HUBSYNC_CONFIG during preRun.
var configPath string

// store holds the profile catalog for the duration of one invocation. It is
// loaded in preRun and written back by the subcommands that mutate it.
var store *profile.Store

// executor is the container runtime port, built from --runtime-binary.
var executor *runtime.Executor

// tagClient queries the registry tags API. Subcommands that resolve tag
// metadata wrap it in a fresh registry.Cache per run, keeping the
// one-fetch-per-identity guarantee scoped to a single pass.
var tagClient *registry.Client

// notifier delivers completion summaries when notification URLs are set.
var notifier *notifications.Notifier

// rootCmd represents the root command for the hubsync CLI.
var rootCmd = NewRootCommand()

// NewRootCommand creates and configures the root command for the hubsync CLI.
func NewRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "hubsync",
		Short:             "Tracks container images and mirrors them between registries",
		Long:              "\nhubsync keeps a declarative catalog of container images and their wanted tags,\npulls them through the local container runtime, and republishes them to a\ndestination registry while preserving digest-sharing tag aliases.",
		PersistentPreRunE: preRun,
		SilenceUsage:      true,
	}
}

// init registers command-line flags and subcommands during package
// initialization.
func init() {
	flags.SetDefaults()
	flags.RegisterSystemFlags(rootCmd)
	flags.RegisterRegistryFlags(rootCmd)

	rootCmd.AddCommand(
		newAddCommand(),
		newEditCommand(),
		newPullCommand(),
		newPushCommand(),
		newCleanCommand(),
		newSyncCommand(),
	)
}

// Execute runs the root command and manages any errors encountered during
// its execution. It is the primary entry point for the CLI, called from
// main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Fatal("Command failed")
	}
}

// preRun prepares logging and the shared collaborators before any
// subcommand executes: it loads the catalog, builds the runtime executor and
// the tags client, and configures the notification sink.
func preRun(cmd *cobra.Command, _ []string) error {
	flagsSet := cmd.Root().PersistentFlags()

	if err := flags.SetupLogging(flagsSet); err != nil {
		return err
	}

	logrus.Debug("hubsync ", meta.Version)

	var err error

	configPath, _ = flagsSet.GetString("config")

	store, err = config.Load(configPath)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"config":   configPath,
		"profiles": len(store.Profiles),
	}).Debug("Loaded profile catalog")

	binary, _ := flagsSet.GetString("runtime-binary")
	executor = runtime.NewExecutor(binary)

	registryURL, _ := flagsSet.GetString("registry-url")
	tagClient = registry.NewClient(registryURL)

	urls, _ := flagsSet.GetStringSlice("notification-url")

	notifier, err = notifications.NewNotifier(urls)
	if err != nil {
		return err
	}

	return nil
}

// saveCatalog writes the possibly-mutated catalog back to disk. Only the
// subcommands that change the store call it.
func saveCatalog() error {
	return config.Save(configPath, store)
}
