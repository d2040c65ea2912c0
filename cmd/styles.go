package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/decor-cli/decor/color"
	"github.com/decor-cli/decor/constant"
	"github.com/decor-cli/decor/icon"
	"github.com/decor-cli/decor/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(stylesCmd)

	stylesCmd.Flags().StringP("text", "t", constant.SampleText, "Sample text to render each style with")
	stylesCmd.Flags().BoolP("names", "n", false, "Print only style names")
	stylesCmd.Flags().BoolP("json", "j", false, "Print styles and their chains as JSON")
	stylesCmd.MarkFlagsMutuallyExclusive("names", "json")

	stylesCmd.SetOut(os.Stdout)
}

var stylesCmd = &cobra.Command{
	Use:     "styles [filter]",
	Short:   "List the styles in the sheet",
	Aliases: []string{"ls"},
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			s     = loadSheet()
			query = ""
			text  = lo.Must(cmd.Flags().GetString("text"))
		)

		if len(args) > 0 {
			query = args[0]
		}

		names := s.Filter(query)

		switch {
		case lo.Must(cmd.Flags().GetBool("names")):
			for _, name := range names {
				cmd.Println(name)
			}
			return
		case lo.Must(cmd.Flags().GetBool("json")):
			out := make(map[string]string, len(names))
			for _, name := range names {
				chain, _ := s.Lookup(name)
				out[name] = chain.String()
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(out))
			return
		}

		if len(names) == 0 {
			handleErr(fmt.Errorf("no styles match %s in %s", color.Fg(color.Yellow)(query), s.Path))
		}

		frame := terminalFrame()
		for _, name := range names {
			chain, _ := s.Lookup(name)

			cmd.Printf("%s %s\n", color.Fg(color.Purple)(icon.Get(icon.Style)), color.Bold(name))
			cmd.Println(color.Faint(chain.String()))
			cmd.Println(chain.Render(frame, text))
			cmd.Println()
		}

		cmd.Println(color.Faint(util.Quantify(len(names), "style", "styles")))
	},
}
