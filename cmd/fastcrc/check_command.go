package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check [algorithm...]",
		Short: `Verifies check values over "123456789" on the selected backend`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, g, args)
		},
	}
}

func runCheck(cmd *cobra.Command, g *globalFlags, names []string) error {
	algs, err := lookupAll(names)
	if err != nil {
		return err
	}

	s, err := g.open()
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()
	var errs []error
	for _, a := range algs {
		err := a.Verify(s.opts...)
		status := "ok"
		if err != nil {
			status = "FAIL"
			errs = append(errs, err)
		}
		fmt.Fprintf(out, "%-8s %-8s 0x%0*X  %s\n", a.Name, s.backend, hexWidth(a), a.Check, status)
	}
	return errors.Join(errs...)
}
