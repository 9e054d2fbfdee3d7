package cli

import (
	"context"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// lineReader is the part of *readline.Instance the calculator loop uses.
type lineReader interface {
	Readline() (string, error)
	Close() error
}

func (a *app) replCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive DoubleSet calculator",
		Long: `Interactive DoubleSet calculator.

  a = {{1: 2}, {2: 1}}     bind a set to a name
  a + {{-3: 1}} - b        add and subtract, left to right
  :cap 3 hello, Dave       run the capitalizer
  :vars                    list bound names
  :quit                    leave, as does <ctrl>D`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rl, err := readline.New(a.cfg.Prompt)
			if err != nil {
				return errors.Wrap(err, "could not start line editor")
			}

			pterm.Info.Println("DoubleSet calculator, quit with <ctrl>D")
			a.repl(cmd.Context(), rl, NewSession())
			pterm.Info.Println("Good bye!")
			return nil
		},
	}

	cmd.Flags().String("prompt", defaultPrompt, "Prompt shown for each line")
	return cmd
}

// repl evaluates lines until the input ends, :quit is entered or ctx is done.
// Closing rl on cancellation unblocks a pending Readline.
func (a *app) repl(ctx context.Context, rl lineReader, session *Session) {
	stop := context.AfterFunc(ctx, func() {
		rl.Close()
	})
	defer func() {
		stop()
		rl.Close()
	}()

	for ctx.Err() == nil {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return
		}

		line = strings.TrimSpace(line)
		if line == ":quit" || line == ":q" {
			return
		}

		out, err := session.Eval(line)
		if err != nil {
			a.log.WithFields(log.Fields{"line": line}).Debug(err)
			pterm.Error.Println(err.Error())
			continue
		}
		if out != "" {
			pterm.Info.Println(out)
		}
	}

	a.log.WithFields(log.Fields{"reason": ctx.Err()}).Debug("calculator stopped")
}
