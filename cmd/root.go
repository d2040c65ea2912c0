// Package cmd implements the command-line interface for decor.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/decor-cli/decor/color"
	"github.com/decor-cli/decor/constant"
	"github.com/decor-cli/decor/icon"
	"github.com/decor-cli/decor/key"
	"github.com/decor-cli/decor/log"
	"github.com/decor-cli/decor/sheet"
	"github.com/decor-cli/decor/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the icon variant (emoji, nerd, plain, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().String("sheet", "", "Path to the style sheet")
	lo.Must0(viper.BindPFlag(key.SheetPath, rootCmd.PersistentFlags().Lookup("sheet")))
}

var rootCmd = &cobra.Command{
	Use:   constant.Decor,
	Short: "Declarative styles for terminal interfaces",
	Long: constant.AsciiArtLogo + "\n" +
		lipgloss.NewStyle().Italic(true).Foreground(color.Mauve).Render("    - Declarative styles for terminal interfaces"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		_ = cmd.Help()
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

// sheetPath is the --sheet flag or sheet.path, falling back to the config directory.
func sheetPath() string {
	if path := viper.GetString(key.SheetPath); path != "" {
		return path
	}
	return where.Sheet()
}

func loadSheet() *sheet.Sheet {
	path := sheetPath()
	log.Debugf("loading sheet %s", path)

	s, err := sheet.Load(path)
	handleErr(err)
	return s
}

func completionStyleNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	s, err := sheet.Load(sheetPath())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return s.Names(), cobra.ShellCompDirectiveNoFileComp
}
