package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdtodo/todo/internal/parser"
	"github.com/mdtodo/todo/internal/ui"
)

type sectionsResult struct {
	Title    string           `json:"title"`
	Sections []parser.Section `json:"sections"`
}

var sectionsCmd = &cobra.Command{
	Use:   "sections <title>",
	Short: "List the sections of a todo list with their progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadListFromArgs(args)
		if err != nil {
			return err
		}

		sections := loaded.List.Sections()
		if sections == nil {
			sections = []parser.Section{}
		}

		if isJSONOutput() {
			outputSuccess(sectionsResult{Title: loaded.List.Title, Sections: sections}, &Meta{Count: len(sections)})
			return nil
		}

		if len(sections) == 0 {
			fmt.Println(ui.Hint("No sections in " + loaded.List.Title))
			return nil
		}
		tbl := ui.NewTable(2)
		for _, s := range sections {
			tbl.AddRow(ui.Progress(s.Done, s.Total, 10), ui.Bold.Render(s.Name))
		}
		fmt.Print(tbl.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
}
