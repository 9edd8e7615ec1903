package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resolve-robotics-uri/internal/app"
	"resolve-robotics-uri/internal/shared"
)

type resolveOptions struct {
	Path    string
	Profile string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve <uri>",
		Short: "Resolve a URI to an absolute filesystem path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.Context(), cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Path, "path", "", "Additional search directories (path-list separated)")
	cmd.Flags().StringVar(&opts.Profile, "profile", "", "Search profile file")

	_ = viper.BindPFlag("path", cmd.Flags().Lookup("path"))
	_ = viper.BindPFlag("profile", cmd.Flags().Lookup("profile"))

	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions, uri string) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		URI:     uri,
		Paths:   shared.SplitPathList(resolveString(cmd, opts.Path, "path", "path")),
		Profile: resolveString(cmd, opts.Profile, "profile", "profile"),
	})
	if err != nil {
		return err
	}
	// Stdout carries the resolved path and nothing else, so the command
	// composes in shell pipelines.
	fmt.Fprintln(cmd.OutOrStdout(), result.Path)
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
