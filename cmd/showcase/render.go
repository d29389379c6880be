package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/showcase/internal/content"
	"github.com/alexisbeaulieu97/showcase/internal/gallery"
	"github.com/alexisbeaulieu97/showcase/internal/tui/site"
)

type renderOptions struct {
	quickStart string
	preview    string
}

func newRenderCmd(v *viper.Viper) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the page once without the interactive UI",
		Example: `  showcase render --width 80
  showcase render --quick-start install --preview feedback --theme light`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(v)
			if err != nil {
				return err
			}
			return runRender(cmd.OutOrStdout(), s, opts)
		},
	}

	cmd.Flags().StringVar(&opts.quickStart, "quick-start", "setup", "quick start tab: setup, install or usage")
	cmd.Flags().StringVar(&opts.preview, "preview", "form", "component preview tab: form, data, feedback or layout")

	return cmd
}

func runRender(out io.Writer, s settings, opts renderOptions) error {
	quick, err := parseOptional(opts.quickStart, gallery.ParseQuickStartSection)
	if err != nil {
		return err
	}
	preview, err := parseOptional(opts.preview, gallery.ParseShowcaseSection)
	if err != nil {
		return err
	}

	c, err := content.Load(s.content)
	if err != nil {
		return err
	}

	page, err := site.Render(site.RenderOptions{
		Content:    c,
		Theme:      s.theme,
		Width:      s.width,
		QuickStart: quick,
		Preview:    preview,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, page)
	return err
}

// parseOptional treats an empty value as the zero section.
func parseOptional[S any](value string, parse func(string) (S, error)) (S, error) {
	var zero S
	if value == "" {
		return zero, nil
	}
	return parse(value)
}
