package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"binding-generator/binding"
	"binding-generator/environment"
	"binding-generator/internal/diagnostic"
	"binding-generator/settings"
)

var checkFlags struct {
	allEnvironments bool
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Settle every registered application and report diagnostics",
	RunE:  runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.BoolVar(&checkFlags.allEnvironments, "all-environments", false, "Check every well-known environment")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}

	envs := environment.All()
	if !checkFlags.allEnvironments {
		env, err := targetEnvironment()
		if err != nil {
			return err
		}

		envs = []environment.Environment{env}
	}

	cache := binding.NewArtifactCache(log)

	var diags diagnostic.Diagnostics

	for _, env := range envs {
		base, err := baseDeployment(env)
		if err != nil {
			return err
		}

		for _, key := range binding.Applications() {
			diags.Merge(check(cache, base, key))
		}
	}

	out := cmd.OutOrStdout()
	for _, d := range diags.All() {
		fmt.Fprintf(out, "%-7s %s\n", d.Severity, d)
	}

	log.Debug("check finished", slog.Int("errors", len(diags.Errors)), slog.Int("settled", cache.Len()))

	return diags.Error()
}

func check(cache *binding.ArtifactCache, base environment.Deployment, key string) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	factory, err := binding.LookupApplication(key)
	if err != nil {
		diags.AddFailure(err, key, base.Environment)
		return diags
	}

	d, found, err := applicationDeployment(base, key)
	if err != nil {
		diags.AddFailure(err, key, base.Environment)
		return diags
	}

	if !found {
		diags.AddWarning("settings_missing",
			fmt.Sprintf("no settings file %s", settings.Resolve(base.SettingsRoot, key)), key, base.Environment)
	}

	artifacts, err := cache.Lookup(d, key, factory)
	if err != nil {
		diags.AddFailure(err, key, base.Environment)
		return diags
	}

	diags.AddInfo("settled", fmt.Sprintf("%s: %d receive ports, %d receive locations, %d send ports, %d orchestrations",
		artifacts.Name,
		len(artifacts.ReceivePorts),
		len(artifacts.ReceiveLocations),
		len(artifacts.SendPorts),
		len(artifacts.Orchestrations)), key, base.Environment)

	return diags
}
