package cli

import (
	"fmt"
	"strings"

	"github.com/allxie/aspiration-takehome/capitalize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) capitalizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capitalize TEXT...",
		Short: "Upper case every Nth alphanumeric character, lower case the rest",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			out := capitalize.Nth(text, a.cfg.Nth)

			a.log.WithFields(log.Fields{
				"nth":     a.cfg.Nth,
				"counted": capitalize.Count(text),
			}).Debug("capitalized")

			_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntP("nth", "n", defaultNth, "Capitalize every nth alphanumeric character, 0 disables")
	return cmd
}
