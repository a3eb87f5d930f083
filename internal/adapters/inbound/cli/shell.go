package cli

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"

	"github.com/truestock/truestock/internal/adapters/outbound/tui"
)

const shellPrompt = "truestock> "

var errLineSyntax = errors.New("cannot read line: unbalanced quotes or unquoted shell operator")

// sessionBlocked lists commands that would take over the terminal.
var sessionBlocked = map[string]bool{"shell": true, "serve": true, "mcp": true}

func newShellCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive inventory session",
		Long:  "Read commands line by line against one catalog. Any truestock command works without the program name, e.g. `add m002 monitor \"LG 27\" 18000 4`. Type exit or quit to leave.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := s.service(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, tui.RenderCatalog(svc.List(), svc.Currency()))

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, shellPrompt)
				if !scanner.Scan() {
					fmt.Fprintln(out)
					return scanner.Err()
				}

				words, err := splitArgs(scanner.Text())
				if err != nil {
					fmt.Fprint(out, tui.RenderError(err))
					continue
				}
				if len(words) == 0 {
					continue
				}

				if words[0] == "exit" || words[0] == "quit" {
					return nil
				}
				if sessionBlocked[words[0]] {
					fmt.Fprint(out, tui.RenderError(fmt.Errorf("%s is not available inside the shell", words[0])))
					continue
				}

				line := newRootCmd(s)
				line.SetIn(cmd.InOrStdin())
				line.SetOut(out)
				line.SetErr(cmd.ErrOrStderr())
				line.SetArgs(words)
				if err := line.Execute(); err != nil {
					fmt.Fprint(out, tui.RenderError(err))
				}
			}
		},
	}
}

// splitArgs splits a shell line into words with POSIX-style quoting.
// Environment and command substitution stay off, and an unquoted ; & | < >
// is rejected rather than silently ending the line.
func splitArgs(line string) ([]string, error) {
	p := shellwords.NewParser()
	words, err := p.Parse(line)
	if err != nil || p.Position >= 0 {
		return nil, errLineSyntax
	}
	return words, nil
}
