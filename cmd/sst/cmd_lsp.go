package main

import (
	"github.com/dhamidi/sst/javasst/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return lsp.NewServer("0.1.0").RunStdio()
		},
	}
}
