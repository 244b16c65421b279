package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdtodo/todo/internal/logging"
	"github.com/mdtodo/todo/internal/store"
	"github.com/mdtodo/todo/internal/ui"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <title>",
	Short: "Delete a todo list from the active context",
	Long: `Deletes the todo list file. On a terminal you are asked first;
elsewhere --force is required.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := resolveContext("")
		if err != nil {
			return fail(err, ErrContextNotFound)
		}
		path, err := store.FindDocument(ctx.FolderLocation, args[0])
		if err != nil {
			return fail(err, ErrFileNotFound)
		}

		if !deleteForce {
			if !shouldPromptForConfirm() {
				return handleErrorMsg(ErrConfirmationRequired,
					fmt.Sprintf("refusing to delete %s without confirmation", path), "Use --force to delete")
			}
			if !promptForConfirm(fmt.Sprintf("Delete %s?", displayPath(ctx, path))) {
				fmt.Println(ui.Hint("Nothing deleted."))
				return nil
			}
		}

		if err := store.Remove(path); err != nil {
			return fail(err, ErrFileWriteError)
		}
		logging.L().Info("deleted todo list", "path", path)

		if isJSONOutput() {
			outputSuccess(map[string]string{"context": ctx.Name, "deleted": path}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Deleted %s", ui.FilePath(displayPath(ctx, path))))
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Delete without asking")
	rootCmd.AddCommand(deleteCmd)
}
