package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/sst/javasst/parser"
	"github.com/dhamidi/sst/javasst/scanner"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	var classFile string

	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Fold a constant expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []parser.Option
			if classFile != "" {
				data, err := os.ReadFile(classFile)
				if err != nil {
					return fmt.Errorf("read java file: %w", err)
				}
				class, err := parser.ParseSource(data, classFile)
				if err != nil {
					return err
				}
				opts = append(opts, parser.WithOuterScope(class))
			}

			v, err := parser.New(scanner.New([]byte(args[0]), "<expr>"), opts...).ParseExpression()
			if err != nil {
				return err
			}

			if v.Known {
				fmt.Fprintln(cmd.OutOrStdout(), v.Int)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "not constant")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&classFile, "class", "", "resolve constants declared in this file")

	return cmd
}
