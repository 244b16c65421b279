package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mdtodo/todo/internal/config"
	"github.com/mdtodo/todo/internal/logging"
	"github.com/mdtodo/todo/internal/parser"
	"github.com/mdtodo/todo/internal/query"
	"github.com/mdtodo/todo/internal/render"
	"github.com/mdtodo/todo/internal/store"
	"github.com/mdtodo/todo/internal/ui"
)

var (
	listLabels         []string
	listShort          bool
	listAll            bool
	listDone           bool
	listGlobal         bool
	listSection        string
	listOpenTasks      bool
	listCompletedTasks bool
	listPretty         bool
)

// listEntry is one list in `todo list --json`.
type listEntry struct {
	Context  string          `json:"context"`
	Path     string          `json:"path"`
	Title    string          `json:"title"`
	Labels   []string        `json:"labels"`
	Done     int             `json:"done"`
	Total    int             `json:"total"`
	AllDone  bool            `json:"all_done"`
	Modified string          `json:"modified"`
	Section  *parser.Section `json:"section,omitempty"`
	Tasks    []string        `json:"tasks,omitempty"`
}

// listedContext groups the lists found in one context.
type listedContext struct {
	ctx     config.Context
	entries []listEntry
	lists   []*parser.TodoList
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List todo lists of the active context",
	Long: `Lists todo lists that still have open tasks. Use --done for finished
lists, --all for both, and --global to include every context.

Labels given with -l must all be present. With --section, completion is
judged on that section and lists without it are left out.

Files that cannot be parsed are skipped with a warning; files that cannot
be read stop the listing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := query.ListFilter{
			Labels:  parser.SplitLabels(strings.Join(listLabels, ",")),
			Done:    listDone,
			All:     listAll,
			Section: strings.TrimSpace(listSection),
		}
		taskOpts := query.TaskOptions{
			Completed: listCompletedTasks,
			Open:      listOpenTasks,
			Short:     listShort,
			Section:   filter.Section,
		}

		contexts, err := listContexts()
		if err != nil {
			return fail(err, ErrContextNotFound)
		}

		var (
			results  []listedContext
			warnings []Warning
			count    int
		)
		for _, ctx := range contexts {
			listed, skipped, err := collectLists(ctx, filter, taskOpts)
			if err != nil {
				return fail(err, ErrFileReadError)
			}
			warnings = append(warnings, skipped...)
			results = append(results, listed)
			count += len(listed.entries)
		}

		if isJSONOutput() {
			var entries []listEntry
			for _, r := range results {
				entries = append(entries, r.entries...)
			}
			if entries == nil {
				entries = []listEntry{}
			}
			outputSuccessWithWarnings(map[string]interface{}{"lists": entries}, warnings, &Meta{Count: count})
			return nil
		}

		for _, w := range warnings {
			fmt.Fprintln(os.Stderr, ui.Warningf("skipped %s: %s", w.Path, w.Message))
		}
		return printLists(results, taskOpts)
	},
}

// listContexts returns the contexts a listing covers.
func listContexts() ([]config.Context, error) {
	c := getConfig()
	if !listGlobal {
		ctx, err := c.Active()
		if err != nil {
			return nil, err
		}
		return []config.Context{ctx}, nil
	}
	if len(c.Contexts) == 0 {
		return nil, config.ErrNoActiveContext
	}
	return c.Contexts, nil
}

// collectLists walks one context. Read failures abort; parse failures are
// returned as warnings and the document is skipped.
func collectLists(ctx config.Context, filter query.ListFilter, taskOpts query.TaskOptions) (listedContext, []Warning, error) {
	logger := logging.L().With("context", ctx.Name)
	listed := listedContext{ctx: ctx}
	var warnings []Warning

	loc, err := ctx.Location()
	if err != nil {
		logger.Warn("using local time", "err", err)
		loc = time.Local
	}
	wantTasks := taskOpts.Completed || taskOpts.Open

	err = store.WalkDocuments(ctx.FolderLocation, func(entry store.Entry) error {
		raw, err := store.ReadDocument(entry.Path)
		if err != nil {
			return err
		}

		list, err := parser.Parse(raw)
		if err != nil {
			logger.Warn("skipping todo list", "path", entry.Path, "err", err)
			warnings = append(warnings, Warning{Code: ErrParseError, Message: err.Error(), Path: entry.Path})
			return nil
		}
		if !filter.Match(list) {
			logger.Debug("filtered out", "path", entry.Path)
			return nil
		}

		e := listEntry{
			Context:  ctx.Name,
			Path:     entry.Path,
			Title:    list.Title,
			Labels:   list.Labels,
			Done:     list.Done,
			Total:    list.Total,
			AllDone:  list.AllDone(),
			Modified: entry.ModTime.In(loc).Format(time.RFC3339),
		}
		if filter.Section != "" {
			if s, ok := list.Section(filter.Section); ok {
				e.Section = &s
			}
		}
		if wantTasks {
			tasks, err := query.Tasks(list.Raw, taskOpts)
			if err != nil {
				return err
			}
			e.Tasks = tasks
		}

		listed.entries = append(listed.entries, e)
		listed.lists = append(listed.lists, list)
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		err = fmt.Errorf("context %q: %w", ctx.Name, err)
	}
	return listed, warnings, err
}

func printLists(results []listedContext, taskOpts query.TaskOptions) error {
	wantTasks := taskOpts.Completed || taskOpts.Open
	display := ui.NewDisplayContext()

	for _, r := range results {
		fmt.Println(ui.Hint("Todo lists from " + r.ctx.FolderLocation))

		if listPretty && listShort {
			printProgressTable(r)
			continue
		}

		for i, list := range r.lists {
			entry := r.entries[i]
			switch {
			case wantTasks:
				line, _ := render.Short(list, taskOpts.Section)
				fmt.Println(line)
				for _, task := range entry.Tasks {
					fmt.Println(indent(task, "  "))
				}
			case listShort:
				line, _ := render.Short(list, taskOpts.Section)
				fmt.Println(line)
			case listPretty:
				out, err := ui.RenderMarkdown(list.Raw, display.MarkdownWidth())
				if err != nil {
					return handleError(ErrInternal, err, "")
				}
				fmt.Print(out)
			default:
				if err := render.Full(os.Stdout, list); err != nil {
					return handleError(ErrInternal, err, "")
				}
				fmt.Println()
			}
		}
	}
	return nil
}

func printProgressTable(r listedContext) {
	tbl := ui.NewTable(3)
	for i, list := range r.lists {
		done, total := list.Done, list.Total
		if s := r.entries[i].Section; s != nil {
			done, total = s.Done, s.Total
		}
		tbl.AddRow(ui.Progress(done, total, 10), ui.Accent.Render(list.Title), ui.Hint(strings.Join(list.Labels, ",")))
	}
	fmt.Print(tbl.String())
}

func indent(text, prefix string) string {
	return prefix + strings.ReplaceAll(text, "\n", "\n"+prefix)
}

func init() {
	listCmd.Flags().StringSliceVarP(&listLabels, "label", "l", nil, "Only lists carrying every label (comma-separated)")
	listCmd.Flags().BoolVarP(&listShort, "short", "s", false, "One line per list")
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "Show finished and unfinished lists")
	listCmd.Flags().BoolVarP(&listDone, "done", "d", false, "Show only finished lists")
	listCmd.Flags().BoolVarP(&listGlobal, "global", "g", false, "Include every context")
	listCmd.Flags().StringVar(&listSection, "section", "", "Judge and report on one section of the task block")
	listCmd.Flags().BoolVar(&listOpenTasks, "open-tasks", false, "Print the open tasks of each list")
	listCmd.Flags().BoolVar(&listCompletedTasks, "completed-tasks", false, "Print the completed tasks of each list")
	listCmd.Flags().BoolVar(&listPretty, "pretty", false, "Render lists for the terminal")
	rootCmd.AddCommand(listCmd)
}
