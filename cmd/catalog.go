package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Dr-Dre420/unlostai/internal/view"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List skill categories and careers",
	Run: func(cmd *cobra.Command, _ []string) {
		log, _, c := bootstrap()

		if cmd.Flag("output-json").Value.String() == "true" {
			pretty, err := json.MarshalIndent(c, "", "  ")
			if err != nil {
				log.Fatal("encoding catalog", zap.Error(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(pretty))
			return
		}

		fmt.Fprintln(cmd.OutOrStdout(), view.Catalog(c))
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().Bool("output-json", false, "print the catalog as json")
}
