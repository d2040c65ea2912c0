package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/decor-cli/decor/color"
	"github.com/decor-cli/decor/constant"
	"github.com/decor-cli/decor/key"
	"github.com/decor-cli/decor/log"
	"github.com/decor-cli/decor/modifier"
	"github.com/decor-cli/decor/style"
	"github.com/decor-cli/decor/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("style", "S", "", "Name of the style to render with")
	_ = renderCmd.RegisterFlagCompletionFunc("style", completionStyleNames)

	renderCmd.Flags().IntP("wrap", "w", 0, "Wrap text at this many cells, 0 disables wrapping")
	lo.Must0(viper.BindPFlag(key.RenderWrap, renderCmd.Flags().Lookup("wrap")))

	renderCmd.Flags().Int("width", 0, "Override the width in cells")
	renderCmd.Flags().Int("height", 0, "Override the height in cells")
	renderCmd.Flags().Float64("fill", 0, "Fill this fraction of the terminal width")
	renderCmd.Flags().Int("padding", 0, "Add uniform padding in cells")
	renderCmd.Flags().Bool("chain", false, "Print the decoration chain instead of rendering")

	renderCmd.SetOut(os.Stdout)
}

var renderCmd = &cobra.Command{
	Use:   "render [text...]",
	Short: "Render text with a style from the sheet",
	Example: "  decor render --style card Hello there\n" +
		"  decor render --padding 1 --fill 0.5 Wide",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			name = lo.Must(cmd.Flags().GetString("style"))
			base = modifier.Empty
		)

		if name != "" {
			s := loadSheet()
			chain, ok := s.Lookup(name)
			if !ok {
				handleErr(errUnknownStyle(s.Suggest(name), name))
			}
			base = chain
		}

		chain := style.Decorate(func(d *style.Decor) {
			d.Then(base)
			d.Appearance(func(a *style.AppearanceStyle) {
				if cmd.Flags().Changed("padding") {
					a.SetPadding(style.PaddingUniform{Distance: lo.Must(cmd.Flags().GetInt("padding"))})
				}
			})
			d.Size(func(s *style.SizeStyle) {
				if cmd.Flags().Changed("width") {
					s.SetWidth(lo.Must(cmd.Flags().GetInt("width")))
				}
				if cmd.Flags().Changed("height") {
					s.SetHeight(lo.Must(cmd.Flags().GetInt("height")))
				}
				if cmd.Flags().Changed("fill") {
					s.SetFillMaxWidth(util.Clamp(lo.Must(cmd.Flags().GetFloat64("fill")), 0, 1))
				}
			})
		})

		if lo.Must(cmd.Flags().GetBool("chain")) {
			cmd.Println(chain)
			return
		}

		text := constant.SampleText
		if len(args) > 0 {
			text = strings.Join(args, " ")
		}
		text = util.Wrap(text, viper.GetInt(key.RenderWrap))

		cmd.Println(chain.Render(terminalFrame(), text))
	},
}

// terminalFrame is the frame fill fractions resolve against.
func terminalFrame() modifier.Frame {
	width, height, err := util.TerminalSize()
	if err != nil {
		log.Warnf("terminal size unavailable, fills are ignored: %s", err)
		return modifier.Frame{}
	}
	return modifier.Frame{Width: width, Height: height}
}

func errUnknownStyle(closest, name string) error {
	if closest == "" {
		return fmt.Errorf("unknown style %s", color.Fg(color.Red)(name))
	}
	return fmt.Errorf(
		"unknown style %s, did you mean %s?",
		color.Fg(color.Red)(name),
		color.Fg(color.Yellow)(closest),
	)
}
