package main

import (
	"bufio"
	"fmt"
	"os"

	"unitcalc/app/units"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var canonical bool

	cmd := &cobra.Command{
		Use:   "unitcalc [expression ...]",
		Short: "Reduce physical-unit expressions to SI base-unit factors",
		Long: `unitcalc parses physical-unit expressions such as "kg*m/s**2" or
"(km/h)**2" and reduces each one to an exact multiplier, an affine offset,
and exponents over the seven SI base dimensions.

With no arguments, a single expression is read from standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			exprs := args
			if len(exprs) == 0 {
				line, err := readLine(cmd)
				if err != nil {
					return err
				}
				exprs = []string{line}
			}

			failed := 0
			for _, expr := range exprs {
				f, err := units.Parse(expr)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", expr, err)
					failed++
					continue
				}
				if canonical {
					fmt.Fprintln(cmd.OutOrStdout(), f.Canonical())
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), f)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, len(exprs))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&canonical, "canonical", "c", false,
		"print the canonical SI expression instead of the factor record")
	return cmd
}

// readLine reads exactly one line from the command's stdin.
func readLine(cmd *cobra.Command) (string, error) {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("no input")
	}
	return scanner.Text(), nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
