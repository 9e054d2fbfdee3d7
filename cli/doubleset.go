package cli

import (
	"fmt"
	"strconv"

	"github.com/allxie/aspiration-takehome/doubleset"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) doubleSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doubleset",
		Aliases: []string{"ds"},
		Short:   "Parse and combine DoubleSets written as {{member: count}, ...}",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "parse SET",
			Short: "Print the canonical form of a set",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ds, err := a.parse(args[0])
				if err != nil {
					return err
				}
				return a.print(cmd, ds)
			},
		},
		a.binaryCommand("add", "Sum two sets, counts are capped at 2", doubleset.Add),
		a.binaryCommand("subtract", "Remove the second set's counts from the first", doubleset.Subtract),
		&cobra.Command{
			Use:   "count SET MEMBER",
			Short: "Print how many times MEMBER is in SET",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ds, err := a.parse(args[0])
				if err != nil {
					return err
				}
				member, err := doubleset.ParseMember(args[1])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.Itoa(ds.Count(member)))
				return err
			},
		},
		&cobra.Command{
			Use:   "set SET MEMBER COUNT",
			Short: "Print SET with MEMBER held COUNT times",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				ds, err := a.parse(args[0])
				if err != nil {
					return err
				}
				if err := ds.SetMemberString(args[1], args[2]); err != nil {
					return err
				}
				return a.print(cmd, ds)
			},
		},
		&cobra.Command{
			Use:   "delete SET MEMBER",
			Short: "Print SET without MEMBER",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ds, err := a.parse(args[0])
				if err != nil {
					return err
				}
				member, err := doubleset.ParseMember(args[1])
				if err != nil {
					return err
				}
				ds.DeleteMember(member)
				return a.print(cmd, ds)
			},
		},
	)

	return cmd
}

type binaryOp func(a, b *doubleset.DoubleSet) (*doubleset.DoubleSet, error)

func (a *app) binaryCommand(name, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   name + " SET SET",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := a.parse(args[0])
			if err != nil {
				return err
			}
			right, err := a.parse(args[1])
			if err != nil {
				return err
			}

			result, err := op(left, right)
			if err != nil {
				return errors.Wrap(err, name)
			}

			a.log.WithFields(log.Fields{
				"op":     name,
				"left":   left.Len(),
				"right":  right.Len(),
				"result": result.Len(),
			}).Debug("combined sets")

			return a.print(cmd, result)
		},
	}
}

func (a *app) parse(text string) (*doubleset.DoubleSet, error) {
	ds, err := doubleset.Parse(text)
	if err != nil {
		return nil, errors.Wrapf(err, "set %q", text)
	}

	a.log.WithFields(log.Fields{
		"members": ds.Len(),
		"size":    ds.Size(),
	}).Debug("parsed set")

	return ds, nil
}

func (a *app) print(cmd *cobra.Command, ds *doubleset.DoubleSet) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), ds.String())
	return err
}
