package commands

import (
	"github.com/spf13/cobra"
)

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "koreannum",
		Short:         "Korean number systems reference page",
		SilenceUsage:  true,
	}

	root.AddCommand(serveCmd(), renderCmd())
	return root
}
