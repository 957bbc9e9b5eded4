package cmd

import (
	"github.com/spf13/cobra"
)

var ShortenCmd = &cobra.Command{
	Use:   "shorten",
	Short: "Create a short code for a URL",
	Long: `Normalizes the URL, allocates a unique short code and prints it.

Example:
  shortener shorten --url=example.com/some/long/path`,
	RunE: func(cmd *cobra.Command, args []string) error {
		longURL, _ := cmd.Flags().GetString("url")

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

		shortCode, err := svc.Shorten(ctx, longURL)
		if err != nil {
			return err
		}

		return printShortLink(cmd.OutOrStdout(), Cfg.BaseURL, shortCode)
	},
}

func init() {
	ShortenCmd.Flags().String("url", "", "the long URL to shorten (required)")
	_ = ShortenCmd.MarkFlagRequired("url")
	RootCmd.AddCommand(ShortenCmd)
}
