package cli

import (
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"

	"github.com/mdtodo/todo/internal/ui"
)

// promptReader supplies the answer line; tests replace it.
var promptReader = readLine

func shouldPromptForConfirm() bool {
	if isJSONOutput() {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd())
}

// promptForConfirm asks a y/N question. Without a terminal the answer is no.
func promptForConfirm(message string) bool {
	if !shouldPromptForConfirm() {
		return false
	}
	return askYesNo(message)
}

func askYesNo(message string) bool {
	if message == "" {
		message = "Continue?"
	}
	response, err := promptReader(message + " " + ui.Hint("[y/N]") + " ")
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

func readLine(prompt string) (string, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return "", err
	}
	defer rl.Close()

	return rl.Readline()
}

// confirmOrRequireFlag returns a confirmation func for store.EnsureFolder
// style callers: assumeYes skips the question, otherwise the user is asked
// when a terminal is attached.
func confirmOrRequireFlag(assumeYes bool, message func(string) string) func(string) bool {
	return func(subject string) bool {
		if assumeYes {
			return true
		}
		return promptForConfirm(message(subject))
	}
}
