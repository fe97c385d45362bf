package main

import (
	"github.com/spf13/cobra"
)

func newShowCmd(root *rootOptions) *cobra.Command {
	var (
		employeeID int
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show original vs corrected salary for one employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := root.loadService(cmd.Context())
			if err != nil {
				return err
			}

			resp, err := svc.GetReview(cmd.Context(), employeeID)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return renderReview(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().IntVarP(&employeeID, "employee", "e", 0, "Employee ID (required)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full read model as JSON")
	_ = cmd.MarkFlagRequired("employee")
	return cmd
}
