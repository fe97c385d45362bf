package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type listOutput struct {
	Source    string `json:"source"`
	Employees []int  `json:"employees"`
	Underpaid int    `json:"underpaid"`
}

func newListCmd(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employee ids in sheet order",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, summary, err := root.loadService(cmd.Context())
			if err != nil {
				return err
			}

			options, err := svc.GetOptions(cmd.Context())
			if err != nil {
				return err
			}

			out := listOutput{
				Source:    summary.Source,
				Employees: make([]int, len(options)),
				Underpaid: summary.Underpaid,
			}
			for i, o := range options {
				out.Employees[i] = o.EmployeeID
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}

			w := cmd.OutOrStdout()
			for _, o := range options {
				fmt.Fprintln(w, o.Label)
			}
			fmt.Fprintf(w, "%d employees from %s, %d owed money\n", len(options), out.Source, out.Underpaid)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}
