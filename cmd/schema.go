package cmd

import (
	"encoding/json"
	"os"

	"github.com/decor-cli/decor/sheet"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of style sheets",
	Long:  "Print the JSON schema of style sheets, for editor completion and validation of JSON and YAML sheets.",
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(sheet.Schema()))
	},
}
