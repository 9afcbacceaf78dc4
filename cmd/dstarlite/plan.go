package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dstarlite/scenario"
)

func newPlanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <scenario.yaml>",
		Short: "Plan once, then replay the scenario's changes with one incremental replan each",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(args[0])
			if err != nil {
				return errors.Wrapf(err, "loading %s", args[0])
			}
			a.logger.WithField("path", args[0]).Debug("scenario loaded")

			ss, err := newSession(s, s.Grid.Rows, a.logger, nil, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			return ss.applyChanges(s.Changes)
		},
	}
}
