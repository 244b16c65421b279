package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdtodo/todo/internal/query"
)

var (
	tasksOpen      bool
	tasksCompleted bool
	tasksShort     bool
	tasksSection   string
)

type tasksResult struct {
	Title   string   `json:"title"`
	Section string   `json:"section,omitempty"`
	Tasks   []string `json:"tasks"`
}

var tasksCmd = &cobra.Command{
	Use:   "tasks <title>",
	Short: "Print the tasks of a todo list",
	Long: `Prints the tasks of a todo list in document order. Without --open or
--completed both kinds are printed. --short keeps only the first line of
each task.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadListFromArgs(args)
		if err != nil {
			return err
		}

		opts := query.TaskOptions{
			Completed: tasksCompleted,
			Open:      tasksOpen,
			Short:     tasksShort,
			Section:   tasksSection,
		}
		if !opts.Completed && !opts.Open {
			opts.Completed, opts.Open = true, true
		}

		tasks, err := query.Tasks(loaded.List.Raw, opts)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		if isJSONOutput() {
			outputSuccess(tasksResult{
				Title:   loaded.List.Title,
				Section: opts.Section,
				Tasks:   tasks,
			}, &Meta{Count: len(tasks)})
			return nil
		}

		for _, task := range tasks {
			fmt.Println(task)
		}
		return nil
	},
}

func init() {
	tasksCmd.Flags().BoolVar(&tasksOpen, "open", false, "Print open tasks")
	tasksCmd.Flags().BoolVar(&tasksCompleted, "completed", false, "Print completed tasks")
	tasksCmd.Flags().BoolVarP(&tasksShort, "short", "s", false, "Print only the first line of each task")
	tasksCmd.Flags().StringVar(&tasksSection, "section", "", "Only tasks of this section")
	rootCmd.AddCommand(tasksCmd)
}
