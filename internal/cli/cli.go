// Package cli implements the sumuuid command line: `sumuuid sum A B` and
// `sumuuid uuid`, with no flags besides --help.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/viant/sumuuid"
)

const (
	ExitOK                 = 0
	ExitUsage              = 1
	ExitOverflow           = 2
	ExitEntropyUnavailable = 3
)

// errUsage marks invalid arguments
var errUsage = errors.New("usage")

// ExitCode maps an execution error to a process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, sumuuid.ErrOverflow):
		return ExitOverflow
	case errors.Is(err, sumuuid.ErrEntropyUnavailable):
		return ExitEntropyUnavailable
	default:
		return ExitUsage
	}
}

// NewCommand returns the root command writing results to out
func NewCommand(srv *sumuuid.Service, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "sumuuid",
		Short:         "Sum formatting and random UUID generation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(newSumCommand(srv), newUUIDCommand(srv))
	return root
}

func newSumCommand(srv *sumuuid.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "sum A B",
		Short: "Print A+B as a decimal string, fails on 64-bit overflow",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			b, err := parseOperand(args[1])
			if err != nil {
				return err
			}
			sum, err := srv.SumAsString(a, b)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sum)
			return err
		},
	}
}

func newUUIDCommand(srv *sumuuid.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "uuid",
		Short: "Print a random version 4 UUID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := srv.RandomUUIDv4(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), id.String())
			return err
		},
	}
}

func parseOperand(value string) (uint64, error) {
	ret, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: operand %q is not an unsigned 64-bit integer", errUsage, value)
	}
	return ret, nil
}

// Run executes the command with args and returns the exit code, errors are logged
func Run(srv *sumuuid.Service, args []string, out io.Writer, logger *logrus.Logger) int {
	cmd := NewCommand(srv, out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	code := ExitCode(err)
	if err != nil {
		logger.WithFields(logrus.Fields{"exitCode": code}).Error(err)
	}
	return code
}
