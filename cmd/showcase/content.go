package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/showcase/internal/content"
)

func newContentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "content",
		Short: "Print the built-in content document as a starting point for --content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(content.DefaultDocument())
			return err
		},
	}
}
