package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	sv "github.com/searchql/validator"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the searchql version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "searchql v%s\n", sv.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
