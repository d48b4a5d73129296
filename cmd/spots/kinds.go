package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List registered component kinds",
	Long: `List the component kinds the registry resolves. The default kind, used
for components whose kind is not registered, is marked with an asterisk.`,
	Args: cobra.NoArgs,
	RunE: runKinds,
}

func runKinds(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	def := a.registry.DefaultKind()
	for _, kind := range a.registry.Kinds() {
		marker := " "
		if kind == def {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s\n", marker, kind)
	}
	return nil
}
