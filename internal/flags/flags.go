// Package flags manages command-line flags and environment variables for
// hubsync configuration. Every flag has a HUBSYNC_-prefixed environment
// fallback bound through Viper.
package flags

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hubsync/hubsync/pkg/registry"
	"github.com/hubsync/hubsync/pkg/runtime"
)

// defaultConfigFile is the catalog location used when --config is unset.
const defaultConfigFile = "config.json"

// errInvalidLogFormat indicates an invalid log format was specified.
// It is used in SetupLogging to report configuration errors.
var errInvalidLogFormat = errors.New("invalid log format specified")

// errInvalidLogLevel indicates an invalid log level was specified.
// It is used in SetupLogging to report configuration errors.
var errInvalidLogLevel = errors.New("invalid log level specified")

// errGetFlagFailed indicates a failure to read a registered flag's value.
var errGetFlagFailed = errors.New("failed to read flag value")

// RegisterSystemFlags adds flags that modify hubsync's program flow to the
// root command: catalog location, runtime selection, and logging behavior.
func RegisterSystemFlags(rootCmd *cobra.Command) {
	flags := rootCmd.PersistentFlags()

	flags.StringP(
		"config",
		"c",
		envString("HUBSYNC_CONFIG"),
		"Path to the profile catalog file")

	flags.StringP(
		"runtime-binary",
		"r",
		envString("HUBSYNC_RUNTIME_BINARY"),
		"Container runtime CLI to invoke for pull/tag/push/remove operations")

	flags.StringP(
		"log-format",
		"l",
		viper.GetString("HUBSYNC_LOG_FORMAT"),
		"Sets what logging format to use for console output. Possible values: Auto, LogFmt, Pretty, JSON",
	)

	flags.String(
		"log-level",
		envString("HUBSYNC_LOG_LEVEL"),
		"The maximum log level that will be written to STDERR. Possible values: panic, fatal, error, warn, info, debug or trace",
	)

	flags.BoolP(
		"debug",
		"d",
		envBool("HUBSYNC_DEBUG"),
		"Enable debug mode with verbose logging")

	flags.Bool(
		"trace",
		envBool("HUBSYNC_TRACE"),
		"Enable trace mode with very verbose logging")

	// https://no-color.org/
	flags.Bool(
		"no-color",
		viper.IsSet("NO_COLOR"),
		"Disable ANSI color escape codes in log output")
}

// RegisterRegistryFlags adds flags used by the registry tags API client and
// the notification sink to the root command.
func RegisterRegistryFlags(rootCmd *cobra.Command) {
	flags := rootCmd.PersistentFlags()

	flags.String(
		"registry-url",
		envString("HUBSYNC_REGISTRY_URL"),
		"Base URL of the Docker Hub compatible tags API")

	flags.StringSlice(
		"notification-url",
		envStringSlice("HUBSYNC_NOTIFICATION_URL"),
		"Shoutrrr URLs to notify when a push or sync pass completes")
}

// RegisterPushFlags adds the destination registry flags shared by the push
// and sync subcommands.
func RegisterPushFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.String(
		"repo",
		envString("HUBSYNC_PUSH_REGISTRY"),
		"Destination registry prefix to push images to")

	flags.Bool(
		"cleanup",
		envBool("HUBSYNC_CLEANUP"),
		"Remove declared local images once the push pass completes")
}

// envString retrieves a string value from an environment variable via Viper.
// It binds the key to the environment and returns its value.
func envString(key string) string {
	viper.MustBindEnv(key)

	return viper.GetString(key)
}

// envStringSlice retrieves a string slice from an environment variable via Viper.
// It binds the key to the environment and returns its values.
func envStringSlice(key string) []string {
	viper.MustBindEnv(key)

	return viper.GetStringSlice(key)
}

// envBool retrieves a boolean value from an environment variable via Viper.
// It binds the key to the environment and returns its value.
func envBool(key string) bool {
	viper.MustBindEnv(key)

	return viper.GetBool(key)
}

// SetDefaults configures default values for environment variables.
// It ensures consistent fallback behavior when flags or environment
// variables are unset.
func SetDefaults() {
	viper.AutomaticEnv()
	viper.SetDefault("HUBSYNC_CONFIG", defaultConfigFile)
	viper.SetDefault("HUBSYNC_RUNTIME_BINARY", runtime.DefaultBinary)
	viper.SetDefault("HUBSYNC_REGISTRY_URL", registry.DefaultBaseURL)
	viper.SetDefault("HUBSYNC_LOG_LEVEL", "info")
	viper.SetDefault("HUBSYNC_LOG_FORMAT", "auto")
}

// SetupLogging configures logrus from the logging flags. The --debug and
// --trace switches take precedence over --log-level.
func SetupLogging(flags *pflag.FlagSet) error {
	logFormat, err := flags.GetString("log-format")
	if err != nil {
		return fmt.Errorf("%w: %w", errGetFlagFailed, err)
	}

	noColor, err := flags.GetBool("no-color")
	if err != nil {
		return fmt.Errorf("%w: %w", errGetFlagFailed, err)
	}

	if err := configureLogFormat(logFormat, noColor); err != nil {
		return err
	}

	rawLogLevel, err := flags.GetString("log-level")
	if err != nil {
		return fmt.Errorf("%w: %w", errGetFlagFailed, err)
	}

	if debug, _ := flags.GetBool("debug"); debug {
		rawLogLevel = "debug"
	}

	if trace, _ := flags.GetBool("trace"); trace {
		rawLogLevel = "trace"
	}

	logLevel, err := logrus.ParseLevel(rawLogLevel)
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidLogLevel, err)
	}

	logrus.SetLevel(logLevel)

	return nil
}

// configureLogFormat sets the logrus formatter based on the specified format
// and color preference. It returns an error if the format is invalid.
func configureLogFormat(logFormat string, noColor bool) error {
	switch strings.ToLower(logFormat) {
	case "auto":
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableColors:             noColor,
			EnvironmentOverrideColors: true,
		})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "logfmt":
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	case "pretty":
		logrus.SetFormatter(&logrus.TextFormatter{
			ForceColors:   !noColor,
			FullTimestamp: false,
		})
	default:
		return fmt.Errorf("%w: %s", errInvalidLogFormat, logFormat)
	}

	return nil
}
