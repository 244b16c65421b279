package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdtodo/todo/docs"
	"github.com/mdtodo/todo/internal/ui"
)

var docsRaw bool

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the todo list file format",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if isJSONOutput() {
			outputSuccess(map[string]string{"format": docs.Format}, nil)
			return nil
		}

		display := ui.NewDisplayContext()
		if docsRaw || !display.IsTTY {
			fmt.Print(docs.Format)
			return nil
		}

		out, err := ui.RenderMarkdown(docs.Format, display.MarkdownWidth())
		if err != nil {
			return handleError(ErrInternal, err, "")
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	docsCmd.Flags().BoolVar(&docsRaw, "raw", false, "Print the markdown source")
	rootCmd.AddCommand(docsCmd)
}
