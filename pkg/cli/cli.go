package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pixkit/pkg/generate"
	"pixkit/pkg/proto"
)

const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Execute runs the command line args and returns the process exit status.
func Execute(env Env, args []string) int {
	root := NewRootCommand(env)
	root.SetArgs(args)

	cmd, err := root.ExecuteC()
	if err == nil {
		return ExitOK
	}

	fmt.Fprintf(env.Stderr, "Error: %v\n", err)
	if errors.Is(err, proto.ErrUsage) {
		fmt.Fprint(env.Stderr, cmd.UsageString())
		return ExitUsage
	}
	return ExitFailure
}

func NewRootCommand(env Env) *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:           "pixkit",
		Short:         "A command line tool to process images",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unknown command %q", proto.ErrUsage, args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("%w: a command is required", proto.ErrUsage)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(env.Stdout)
	root.SetErr(env.Stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", proto.ErrUsage, err)
	})

	f.registerTransform(root.PersistentFlags())
	f.registerGlobal(root.PersistentFlags(), env)

	root.AddCommand(
		newTransformCommand(env, f),
		newGenerateCommand(env, f, ModeFractal, "Generate a fractal image"),
		newGenerateCommand(env, f, ModeGenerate, "Generate a simple image"),
	)

	return root
}

func newTransformCommand(env Env, f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "transform <infile> <outfile>",
		Short: "Transform an image",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := f.request(cmd.Flags())
			if err != nil {
				return err
			}

			return run(env, f.config(), Job{
				Mode:    ModeTransform,
				In:      args[0],
				Out:     args[1],
				Request: req,
			})
		},
	}
}

func newGenerateCommand(env Env, f *flags, mode Mode, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   mode.String() + " <outfile>",
		Short: short,
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rejectTransform(cmd.Flags(), mode.String()); err != nil {
				return err
			}
			if err := generate.CheckSize(f.size); err != nil {
				return err
			}

			return run(env, f.config(), Job{
				Mode: mode,
				Out:  args[0],
			})
		},
	}
	f.registerGenerate(cmd.Flags(), env)

	return cmd
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s accepts %d arg(s), received %d", proto.ErrUsage, cmd.Name(), n, len(args))
		}
		return nil
	}
}
