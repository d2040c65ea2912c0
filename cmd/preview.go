package cmd

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/decor-cli/decor/constant"
	"github.com/decor-cli/decor/key"
	"github.com/decor-cli/decor/tui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringP("style", "S", "", "Style to start the preview on")
	_ = previewCmd.RegisterFlagCompletionFunc("style", completionStyleNames)

	previewCmd.Flags().StringP("text", "t", constant.SampleText, "Text to preview styles with")

	previewCmd.Flags().BoolP("mouse", "m", true, "Dispatch mouse clicks to the previewed element")
	lo.Must0(viper.BindPFlag(key.PreviewMouse, previewCmd.Flags().Lookup("mouse")))
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Interactively preview styles and click them",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			s    = loadSheet()
			name = lo.Must(cmd.Flags().GetString("style"))
		)

		if name == "" && s.Len() > 1 {
			prompt := &survey.Select{
				Message: "Style to preview",
				Options: s.Names(),
			}
			handleErr(survey.AskOne(prompt, &name))
		}

		handleErr(tui.Run(&tui.Options{
			Sheet: s,
			Style: name,
			Text:  lo.Must(cmd.Flags().GetString("text")),
			Mouse: viper.GetBool(key.PreviewMouse),
		}))
	},
}
