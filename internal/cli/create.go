package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mdtodo/todo/internal/logging"
	"github.com/mdtodo/todo/internal/parser"
	"github.com/mdtodo/todo/internal/render"
	"github.com/mdtodo/todo/internal/store"
	"github.com/mdtodo/todo/internal/ui"
)

var (
	createLabels      []string
	createDescription string
	createItems       []string
	createMotives     []string
	createForce       bool
	createYes         bool
)

type createResult struct {
	Title   string   `json:"title"`
	Context string   `json:"context"`
	Path    string   `json:"path"`
	Labels  []string `json:"labels"`
	Items   int      `json:"items"`
}

var createCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a todo list in the active context",
	Long: `Creates <folder>/<slug>.md in the active context with a description
block, an optional task block and an optional list of motives.

Examples:
  todo create "Weekend trip" -l travel,family -i "book flights" -i "pack"
  todo create Groceries -c "For the week" -m "eat better"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.TrimSpace(args[0])
		if title == "" {
			return handleErrorMsg(ErrInvalidInput, "title cannot be empty", "")
		}

		ctx, err := resolveContext("")
		if err != nil {
			return fail(err, ErrContextNotFound)
		}

		doc := render.NewDocument{
			Title:       title,
			Description: strings.TrimSpace(createDescription),
			Labels:      parser.SplitLabels(strings.Join(createLabels, ",")),
			Items:       nonEmpty(createItems),
			Motives:     nonEmpty(createMotives),
		}

		confirm := confirmOrRequireFlag(createYes, func(folder string) string {
			return fmt.Sprintf("Folder %s of context %q does not exist. Create it?", folder, ctx.Name)
		})
		if _, err := store.EnsureFolder(ctx.FolderLocation, confirm); err != nil {
			return handleError(errorCode(err, ErrFileWriteError), err, "Create the folder or pass --yes")
		}

		path := store.TodoPath(ctx.FolderLocation, title)
		if err := store.WriteDocument(path, doc.String(), createForce); err != nil {
			suggestion := ""
			if errorCode(err, "") == ErrFileExists {
				suggestion = "Use --force to overwrite"
			}
			return handleError(errorCode(err, ErrFileWriteError), err, suggestion)
		}
		logging.L().Info("created todo list", "context", ctx.Name, "path", path)

		if isJSONOutput() {
			outputSuccess(createResult{
				Title:   title,
				Context: ctx.Name,
				Path:    path,
				Labels:  doc.Labels,
				Items:   len(doc.Items),
			}, nil)
			return nil
		}

		fmt.Println(ui.Successf("Created %s", ui.FilePath(displayPath(ctx, path))))
		return nil
	},
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func init() {
	createCmd.Flags().StringSliceVarP(&createLabels, "labels", "l", nil, "Comma-separated labels")
	createCmd.Flags().StringVarP(&createDescription, "description", "c", "", "Free-text description")
	createCmd.Flags().StringArrayVarP(&createItems, "item", "i", nil, "Task to add (repeatable)")
	createCmd.Flags().StringArrayVarP(&createMotives, "motive", "m", nil, "Why this list exists (repeatable)")
	createCmd.Flags().BoolVar(&createForce, "force", false, "Overwrite an existing list with the same name")
	createCmd.Flags().BoolVarP(&createYes, "yes", "y", false, "Create the context folder without asking")
	rootCmd.AddCommand(createCmd)
}
