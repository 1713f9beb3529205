package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gridcrawl/internal/core"
)

func newWalksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "walks",
		Short: "List the registered walks",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range core.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
