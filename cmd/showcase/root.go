package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Browse a terminal rendition of a UI component showcase",
		Long: `Showcase renders a landing page for a UI component library: a hero, a
feature grid, a quick start guide with copyable commands and a tabbed
component preview.

Settings can also come from .showcase.yaml or SHOWCASE_* environment
variables (for example SHOWCASE_THEME=dark).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(v)
			if err != nil {
				return err
			}
			// Pipes and files get the static page.
			if !isTerminal(cmd.OutOrStdout()) {
				return runRender(cmd.OutOrStdout(), s, renderOptions{})
			}
			return runSite(cmd.Context(), s)
		},
	}

	bindSettings(cmd, v)

	cmd.AddCommand(newRenderCmd(v))
	cmd.AddCommand(newContentCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
