package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/sst/javasst/scanner"
	"github.com/dhamidi/sst/javasst/token"
	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <file>",
		Short: "Print the tokens of a Java SST file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read java file: %w", err)
			}

			out := cmd.OutOrStdout()
			illegal := 0
			for _, tok := range scanner.New(data, args[0]).All() {
				fmt.Fprintf(out, "%s\t%s\t%s\n", tok.Span.Start, tok.Kind, tok.Literal)
				if tok.Kind == token.Illegal {
					illegal++
				}
			}
			if illegal > 0 {
				return fmt.Errorf("%d illegal tokens", illegal)
			}
			return nil
		},
	}
}
