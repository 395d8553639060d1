package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"maze3d/config"
	"maze3d/geometry"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "maze3d",
		Short:        "Procedural 3D wall geometry for tile mazes",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runView(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML settings file")
	flags.StringVarP(&opts.mazeFile, "maze", "m", "", "ASCII maze file (# wall, - door)")
	flags.Int64Var(&opts.seed, "random", 0, "generate a random maze with this seed")
	flags.IntVarP(&opts.resolution, "resolution", "r", 0, "floor plan cells per tile side")
	flags.StringVar(&opts.boundary, "boundary", "", "boundary policy: wall, open or wrap")

	rootCmd.AddCommand(viewCmd(opts))
	rootCmd.AddCommand(buildCmd(opts))
	rootCmd.AddCommand(inspectCmd(opts))
	rootCmd.AddCommand(validateCmd(opts))
	return rootCmd
}

func viewCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open the maze viewer window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runView(cmd, opts)
		},
	}
}

func buildCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Run the geometry pipeline headless and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(a *app) error {
				return writeBuild(cmd.OutOrStdout(), a, opts.format)
			})
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text, json or yaml")
	return cmd
}

func inspectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Browse the classified floor plan in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(a *app) error {
				return runInspect(a)
			})
		},
	}
}

func validateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check settings, maze and segment coverage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(a *app) error {
				return runValidate(cmd.OutOrStdout(), a)
			})
		},
	}
}

// withApp loads settings, creates the logger and assembles the pipeline for a headless command
func withApp(cmd *cobra.Command, opts *options, fn func(*app) error) error {
	s, logger, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer logger.Sync()

	a, err := newApp(s, geometry.FileTextureLoader{}, logger)
	if err != nil {
		return err
	}
	return fn(a)
}

func setup(cmd *cobra.Command, opts *options) (config.Settings, *zap.Logger, error) {
	s, err := opts.settings(cmd)
	if err != nil {
		return s, nil, err
	}
	logger, err := newLogger(s.Logging)
	if err != nil {
		return s, nil, err
	}
	return s, logger, nil
}
