package cmd

import (
	"github.com/spf13/cobra"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every short code, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		db, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		svc, err := newURLService(db)
		if err != nil {
			return err
		}

		urls, err := svc.ListURLs(ctx)
		if err != nil {
			return err
		}

		return printURLs(cmd.OutOrStdout(), urls)
	},
}

func init() {
	RootCmd.AddCommand(ListCmd)
}
