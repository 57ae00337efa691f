package main

import (
	"github.com/spf13/cobra"

	"axwarm/internal/ax"
)

func newRootCommand() *cobra.Command {
	return newRootCommandWith(nil)
}

func newRootCommandWith(binding ax.Binding) *cobra.Command {
	var configFlag string
	opts := &warmOptions{}

	ctx := newCommandContext(&configFlag, binding)

	rootCmd := &cobra.Command{
		Use:   "axwarm",
		Short: "Warm up macOS accessibility trees for lazily initializing applications",
		Long: `axwarm performs a minimal bootstrap read (the AXRole attribute) against
each target application's accessibility root. That read makes the system
accessibility daemon build and cache the element tree for the rest of the
session, working around the "cannot complete" error that automation tools
hit against Electron-style applications.

Without flags the built-in set of commonly affected applications is warmed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.delaySet = cmd.Flags().Changed("delay")
			return runWarmUp(cmd, ctx, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringSliceVar(&opts.apps, "apps", nil, "Application name fragments to warm up (case-insensitive)")
	rootCmd.Flags().StringSliceVar(&opts.targets, "targets", nil, "Alias for --apps")
	rootCmd.Flags().BoolVar(&opts.allRunning, "all-running", false, "Warm up every running application")
	rootCmd.Flags().BoolVar(&opts.list, "list", false, "List running applications and exit")
	rootCmd.Flags().BoolVar(&opts.quiet, "quiet", false, "Only print warnings and errors")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().Float64Var(&opts.delaySeconds, "delay", 0, "Delay in seconds before each warm-up attempt")

	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
