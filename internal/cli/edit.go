package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdtodo/todo/internal/logging"
	"github.com/mdtodo/todo/internal/store"
	"github.com/mdtodo/todo/internal/ui"
)

// openEditor launches the editor and waits; tests replace it.
var openEditor = store.OpenInEditor

var editCmd = &cobra.Command{
	Use:   "edit <title> [context]",
	Short: "Open a todo list in the context's editor",
	Long: `Opens the todo list in the ide of its context (the active context unless
one is named) and waits for the editor to exit. A list that does not exist
yet is opened at the path 'todo create' would use.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctxName := ""
		if len(args) == 2 {
			ctxName = args[1]
		}
		ctx, err := resolveContext(ctxName)
		if err != nil {
			return fail(err, ErrContextNotFound)
		}

		path, err := store.FindDocument(ctx.FolderLocation, args[0])
		if errors.Is(err, store.ErrNotFound) {
			path = store.TodoPath(ctx.FolderLocation, args[0])
		} else if err != nil {
			return fail(err, ErrFileReadError)
		}

		logging.L().Debug("opening editor", "ide", ctx.IDE, "path", path)
		if err := openEditor(ctx.IDE, path); err != nil {
			return fail(err, ErrEditorFailed)
		}

		if isJSONOutput() {
			outputSuccess(map[string]string{"context": ctx.Name, "path": path}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Edited %s", ui.FilePath(displayPath(ctx, path))))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
