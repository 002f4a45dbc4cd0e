package main

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"binding-generator/binding"
	"binding-generator/bindingxml"
	"binding-generator/environment"
	"binding-generator/internal/output"
)

var generateFlags struct {
	applications []string
	output       string
	parallelism  int
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the binding files of the target environment",
	RunE:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringArrayVarP(&generateFlags.applications, "application", "a", nil, "Application registry key (repeatable, default all)")
	f.StringVarP(&generateFlags.output, "output", "o", ".", "Output directory")
	f.IntVar(&generateFlags.parallelism, "parallelism", runtime.GOMAXPROCS(0), "Applications generated concurrently")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}

	env, err := targetEnvironment()
	if err != nil {
		return err
	}

	d, err := baseDeployment(env)
	if err != nil {
		return err
	}

	keys := selectedApplications(generateFlags.applications)
	files := make([]output.GeneratedFile, len(keys))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(generateFlags.parallelism, 1))

	for i, key := range keys {
		g.Go(func() error {
			file, err := generate(ctx, log, key, d)
			if err != nil {
				return fmt.Errorf("application %s: %w", key, err)
			}

			files[i] = file

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if err := output.WriteFiles(files, generateFlags.output); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, file := range files {
		fmt.Fprintf(out, "%s\n", file.Filename)
	}

	return nil
}

func generate(ctx context.Context, log *slog.Logger, key string, base environment.Deployment) (output.GeneratedFile, error) {
	if err := ctx.Err(); err != nil {
		return output.GeneratedFile{}, err
	}

	factory, err := binding.LookupApplication(key)
	if err != nil {
		return output.GeneratedFile{}, err
	}

	d, found, err := applicationDeployment(base, key)
	if err != nil {
		return output.GeneratedFile{}, err
	}

	if !found {
		log.Debug("no settings file", slog.String("application", key), slog.String("root", base.SettingsRoot))
	}

	data, err := bindingxml.NewSerializer(factory(), d, bindingxml.WithLogger(log)).Serialize()
	if err != nil {
		return output.GeneratedFile{}, err
	}

	file := output.GeneratedFile{Filename: output.FileName(key, d.Environment), Content: data}
	log.Info("binding generated",
		slog.String("application", key),
		slog.String("environment", d.Environment.String()),
		slog.Int("bytes", len(data)))

	return file, nil
}
