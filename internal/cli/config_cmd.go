package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mdtodo/todo/internal/config"
	"github.com/mdtodo/todo/internal/logging"
	"github.com/mdtodo/todo/internal/ui"
)

var (
	createContextName     string
	createContextIDE      string
	createContextTimezone string
	createContextFolder   string
	createContextYes      bool

	getContextsFull bool
)

type contextsResult struct {
	ConfigPath string           `json:"config_path"`
	Active     string           `json:"active"`
	Contexts   []config.Context `json:"contexts"`
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage contexts and the configuration file",
}

var configCreateContextCmd = &cobra.Command{
	Use:     "create-context",
	Short:   "Add a context and make it active",
	Example: `  todo config create-context -n work -i code -t Europe/Paris -f ~/todo/work`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := getConfigPath()
		c := getConfig()

		if !config.Exists(path) && !createContextYes {
			if !shouldPromptForConfirm() {
				return handleErrorMsg(ErrConfirmationRequired,
					fmt.Sprintf("no configuration file at %s", path), "Pass --yes to create it")
			}
			if !promptForConfirm(fmt.Sprintf("No configuration file at %s. Create it?", path)) {
				fmt.Println(ui.Hint("No configuration file was created. Aborting command."))
				return nil
			}
		}

		ctx := config.Context{
			Name:           strings.TrimSpace(createContextName),
			IDE:            strings.TrimSpace(createContextIDE),
			Timezone:       strings.TrimSpace(createContextTimezone),
			FolderLocation: strings.TrimSpace(createContextFolder),
		}
		if err := c.AddContext(ctx); err != nil {
			code := ErrInvalidInput
			if _, lookupErr := c.Context(ctx.Name); lookupErr == nil {
				code = ErrContextExists
			}
			return handleError(code, err, "")
		}
		if err := c.SetActive(ctx.Name); err != nil {
			return fail(err, ErrInternal)
		}
		if err := config.SaveTo(path, c); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}
		cfg = c
		logging.L().Info("context created", "name", ctx.Name, "config", path)

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"config_path": path, "active": ctx.Name, "context": ctx}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Successfully updated configuration at %q", path))
		fmt.Printf("Configuration was switched to `%s`\n", ctx.Name)
		return nil
	},
}

var configActiveContextCmd = &cobra.Command{
	Use:   "active-context",
	Short: "Print the active context",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getConfig().Active()
		if err != nil {
			return fail(err, ErrNoActiveContext)
		}

		if isJSONOutput() {
			outputSuccess(ctx, nil)
			return nil
		}
		fmt.Println(ctx.Name)
		return nil
	},
}

var configGetContextsCmd = &cobra.Command{
	Use:   "get-contexts",
	Short: "List configured contexts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := getConfig()

		if isJSONOutput() {
			contexts := c.Contexts
			if contexts == nil {
				contexts = []config.Context{}
			}
			outputSuccess(contextsResult{
				ConfigPath: getConfigPath(),
				Active:     c.ActiveContext,
				Contexts:   contexts,
			}, &Meta{Count: len(contexts)})
			return nil
		}

		if len(c.Contexts) == 0 {
			fmt.Println(ui.Hint("No contexts configured. Run 'todo config create-context'."))
			return nil
		}
		for i, ctx := range c.Contexts {
			if getContextsFull {
				if i > 0 {
					fmt.Println()
				}
				if ctx.Name == c.ActiveContext {
					fmt.Println(ui.AccentBold.Render(ui.SymbolActive + " active"))
				}
				fmt.Println(ctx.String())
				continue
			}
			fmt.Println(ui.ContextName(ctx.Name, ctx.Name == c.ActiveContext))
		}
		return nil
	},
}

var configSetContextCmd = &cobra.Command{
	Use:   "set-context <name>",
	Short: "Switch the active context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := getConfig()
		if err := c.SetActive(args[0]); err != nil {
			return handleErrorWithDetails(errorCode(err, ErrInvalidInput), err, errorSuggestion(err),
				map[string]interface{}{"available": c.Names()})
		}

		path := getConfigPath()
		if err := config.SaveTo(path, c); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}
		cfg = c

		if isJSONOutput() {
			outputSuccess(map[string]string{"active": c.ActiveContext, "config_path": path}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Configuration was switched to `%s`", c.ActiveContext))
		return nil
	},
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Print the configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := getConfig()

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"config_path": getConfigPath(), "config": c}, nil)
			return nil
		}

		out, err := yaml.Marshal(c)
		if err != nil {
			return handleError(ErrInternal, err, "")
		}
		fmt.Println(ui.Hint("# " + getConfigPath()))
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	f := configCreateContextCmd.Flags()
	f.StringVarP(&createContextName, "name", "n", "", "Context name")
	f.StringVarP(&createContextIDE, "ide", "i", "", "Editor command used by 'todo edit'")
	f.StringVarP(&createContextTimezone, "timezone", "t", "", "IANA timezone, e.g. Europe/Paris")
	f.StringVarP(&createContextFolder, "todo-folder", "f", "", "Folder holding the context's todo lists")
	f.BoolVarP(&createContextYes, "yes", "y", false, "Create the configuration file without asking")
	for _, name := range []string{"name", "ide", "todo-folder"} {
		_ = configCreateContextCmd.MarkFlagRequired(name)
	}

	configGetContextsCmd.Flags().BoolVar(&getContextsFull, "full", false, "Show every field of each context")

	configCmd.AddCommand(configCreateContextCmd)
	configCmd.AddCommand(configActiveContextCmd)
	configCmd.AddCommand(configGetContextsCmd)
	configCmd.AddCommand(configSetContextCmd)
	configCmd.AddCommand(configViewCmd)
	rootCmd.AddCommand(configCmd)
}
