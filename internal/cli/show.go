package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mdtodo/todo/internal/parser"
	"github.com/mdtodo/todo/internal/render"
	"github.com/mdtodo/todo/internal/ui"
)

var showPretty bool

type showResult struct {
	Title    string           `json:"title"`
	Context  string           `json:"context"`
	Path     string           `json:"path"`
	Labels   []string         `json:"labels"`
	Done     int              `json:"done"`
	Total    int              `json:"total"`
	AllDone  bool             `json:"all_done"`
	Sections []parser.Section `json:"sections"`
	Raw      string           `json:"raw"`
}

var showCmd = &cobra.Command{
	Use:   "show <title>",
	Short: "Print a todo list of the active context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadListFromArgs(args)
		if err != nil {
			return err
		}
		list := loaded.List

		if isJSONOutput() {
			sections := list.Sections()
			if sections == nil {
				sections = []parser.Section{}
			}
			outputSuccess(showResult{
				Title:    list.Title,
				Context:  loaded.Context.Name,
				Path:     loaded.Path,
				Labels:   list.Labels,
				Done:     list.Done,
				Total:    list.Total,
				AllDone:  list.AllDone(),
				Sections: sections,
				Raw:      list.Raw,
			}, nil)
			return nil
		}

		if showPretty {
			out, err := ui.RenderMarkdown(list.Raw, ui.NewDisplayContext().MarkdownWidth())
			if err != nil {
				return handleError(ErrInternal, err, "")
			}
			fmt.Print(out)
			return nil
		}
		return render.Full(os.Stdout, list)
	},
}

func init() {
	showCmd.Flags().BoolVar(&showPretty, "pretty", false, "Render the list for the terminal")
	rootCmd.AddCommand(showCmd)
}
