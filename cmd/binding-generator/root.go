package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"binding-generator/binding"
	"binding-generator/environment"
	"binding-generator/settings"
)

// environmentVariable supplies --environment when the flag is not given.
const environmentVariable = "BINDING_ENVIRONMENT"

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	environment  string
	settingsRoot string
	overrides    string
	logLevel     string
}

var rootCmd = &cobra.Command{
	Use:   "binding-generator",
	Short: "Generate BizTalk binding files from application graphs",
	Long: "binding-generator settles the registered BizTalk applications for a target\n" +
		"environment and writes one binding file per application.",
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVarP(&rootFlags.environment, "environment", "e", "",
		"Target environment code or name (default $"+environmentVariable+")")
	f.StringVar(&rootFlags.settingsRoot, "settings-root", "", "Directory containing <application>.settings.yaml files")
	f.StringVar(&rootFlags.overrides, "overrides", "", "Registry key of the platform overrides")
	f.StringVar(&rootFlags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.Version = version
}

// newLogger returns a text logger on stderr at the --log-level level.
func newLogger() (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(rootFlags.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}

// targetEnvironment returns the environment named by --environment or, when
// absent, by BINDING_ENVIRONMENT.
func targetEnvironment() (environment.Environment, error) {
	code := rootFlags.environment
	if code == "" {
		code = os.Getenv(environmentVariable)
	}

	return environment.Parse(code)
}

// baseDeployment returns the deployment shared by every application of a run.
func baseDeployment(env environment.Environment) (environment.Deployment, error) {
	d := environment.For(env)
	d.SettingsRoot = rootFlags.settingsRoot

	if rootFlags.overrides != "" {
		overrides, err := binding.LookupOverrides(rootFlags.overrides)
		if err != nil {
			return d, err
		}

		d.Overrides = overrides
	}

	return d, nil
}

// applicationDeployment attaches the settings table of application, if its
// file exists under the settings root. found is false when a settings root
// is set but holds no file for application.
func applicationDeployment(d environment.Deployment, application string) (_ environment.Deployment, found bool, err error) {
	if d.SettingsRoot == "" {
		return d, true, nil
	}

	_, err = os.Stat(settings.Resolve(d.SettingsRoot, application))
	if errors.Is(err, fs.ErrNotExist) {
		return d, false, nil
	}

	if err != nil {
		return d, false, err
	}

	d, err = settings.LoadForDeployment(d, application)

	return d, true, err
}

// selectedApplications returns keys, or every registered application when
// keys is empty.
func selectedApplications(keys []string) []string {
	if len(keys) == 0 {
		return binding.Applications()
	}

	return keys
}
