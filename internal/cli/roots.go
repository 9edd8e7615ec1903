package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resolve-robotics-uri/internal/app"
	"resolve-robotics-uri/internal/shared"
)

type rootsOptions struct {
	Scheme  string
	Path    string
	Profile string
}

func newRootsCommand() *cobra.Command {
	opts := rootsOptions{}
	cmd := &cobra.Command{
		Use:   "roots",
		Short: "List the search roots consulted for a scheme",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoots(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Scheme, "scheme", "package", "URI scheme (package or model)")
	cmd.Flags().StringVar(&opts.Path, "path", "", "Additional search directories (path-list separated)")
	cmd.Flags().StringVar(&opts.Profile, "profile", "", "Search profile file")
	_ = viper.BindPFlag("scheme", cmd.Flags().Lookup("scheme"))
	_ = viper.BindPFlag("path", cmd.Flags().Lookup("path"))
	_ = viper.BindPFlag("profile", cmd.Flags().Lookup("profile"))
	return cmd
}

func runRoots(ctx context.Context, cmd *cobra.Command, opts rootsOptions) error {
	service := newAppService()
	result, err := service.Roots(ctx, app.RootsRequest{
		Scheme:  resolveString(cmd, opts.Scheme, "scheme", "scheme"),
		Paths:   shared.SplitPathList(resolveString(cmd, opts.Path, "path", "path")),
		Profile: resolveString(cmd, opts.Profile, "profile", "profile"),
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "search roots for %s://: %d\n", result.Scheme, len(result.Roots))
	for _, root := range result.Roots {
		source := string(root.Provenance)
		if root.Source != "" {
			source += ":" + root.Source
		}
		fmt.Fprintf(out, "- %s (%s)\n", root.Dir, source)
	}
	return nil
}
