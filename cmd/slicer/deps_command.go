package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"slicer/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Check that the external toolchain is available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.Check(ctx.toolRunner(), deps.Requirements(cfg))

			if jsonOutput {
				if err := writeJSON(cmd, statuses); err != nil {
					return err
				}
			} else {
				rows := make([][]string, 0, len(statuses))
				for _, status := range statuses {
					state := "ok"
					if !status.Available {
						state = "missing"
					}
					rows = append(rows, []string{status.Name, status.Command, state, status.Detail})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Tool", "Command", "Status", "Detail"},
					rows,
					nil,
				))
			}

			missing := 0
			for _, status := range statuses {
				if !status.Available {
					missing++
				}
			}
			if missing > 0 {
				return fmt.Errorf("%d required tool(s) missing", missing)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit tool statuses as JSON")
	return cmd
}
