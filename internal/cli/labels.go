package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/geograph/pkg/errors"
	"github.com/matzehuels/geograph/pkg/vertex"
)

// labelsCommand creates the labels command.
func (c *CLI) labelsCommand() *cobra.Command {
	var (
		start int
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "labels <count>",
		Short: "Print auto-generated vertex labels (A..Z, AA..)",
		Example: `  geograph labels 30
  geograph labels 5 --start 700 --plain`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil || count < 0 {
				return errors.New(errors.ErrCodeInvalidInput, "count must be a non-negative integer, got %q", args[0])
			}
			if start < 0 {
				return errors.New(errors.ErrCodeInvalidInput, "start must not be negative")
			}

			out := cmd.OutOrStdout()
			for i := start; i < start+count; i++ {
				if plain {
					fmt.Fprintln(out, vertex.IndexToLabel(i))
					continue
				}
				fmt.Fprintf(out, "%s %s\n", StyleNumber.Render(fmt.Sprintf("%6d", i)), StyleValue.Render(vertex.IndexToLabel(i)))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&start, "start", 0, "first index")
	cmd.Flags().BoolVar(&plain, "plain", false, "print labels only")

	return cmd
}
