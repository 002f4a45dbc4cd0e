package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"binding-generator/binding"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered applications and platform overrides",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Applications:\n")
	for _, key := range binding.Applications() {
		fmt.Fprintf(out, "  %s\n", key)
	}

	fmt.Fprintf(out, "Overrides:\n")
	for _, key := range binding.Overrides() {
		fmt.Fprintf(out, "  %s\n", key)
	}

	return nil
}
