package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mdtodo/todo/internal/logging"
	"github.com/mdtodo/todo/internal/store"
	"github.com/mdtodo/todo/internal/ui"
)

var moveYes bool

type moveResult struct {
	From        string `json:"from"`
	To          string `json:"to"`
	FromContext string `json:"from_context"`
	ToContext   string `json:"to_context"`
}

var moveCmd = &cobra.Command{
	Use:   "move <title> <context>",
	Short: "Move a todo list from the active context into another one",
	Long: `Moves the todo list into the folder of another context, keeping its
file name. A missing destination folder is created after confirmation.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, destName := args[0], args[1]

		from, err := resolveContext("")
		if err != nil {
			return fail(err, ErrContextNotFound)
		}
		to, err := getConfig().Context(destName)
		if err != nil {
			return handleErrorWithDetails(ErrContextNotFound, err, errorSuggestion(err),
				map[string]interface{}{"available": getConfig().Names()})
		}
		if to.Name == from.Name {
			return handleErrorMsg(ErrInvalidInput, fmt.Sprintf("%q is already in context %q", title, to.Name), "")
		}

		oldPath, err := store.FindDocument(from.FolderLocation, title)
		if err != nil {
			return fail(err, ErrFileNotFound)
		}
		newPath := filepath.Join(to.FolderLocation, filepath.Base(oldPath))

		confirm := confirmOrRequireFlag(moveYes, func(folder string) string {
			return fmt.Sprintf("Folder %s of context %q does not exist. Create it?", folder, to.Name)
		})
		if _, err := store.EnsureFolder(to.FolderLocation, confirm); err != nil {
			return handleError(errorCode(err, ErrFileWriteError), err, "Create the folder or pass --yes")
		}

		if err := store.Move(oldPath, newPath); err != nil {
			return fail(err, ErrFileWriteError)
		}
		logging.L().Info("moved todo list", "from", oldPath, "to", newPath)

		if isJSONOutput() {
			outputSuccess(moveResult{From: oldPath, To: newPath, FromContext: from.Name, ToContext: to.Name}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Moved %s to %s", ui.FilePath(displayPath(from, oldPath)), ui.FilePath(displayPath(to, newPath))))
		return nil
	},
}

func init() {
	moveCmd.Flags().BoolVarP(&moveYes, "yes", "y", false, "Create the destination folder without asking")
	rootCmd.AddCommand(moveCmd)
}
