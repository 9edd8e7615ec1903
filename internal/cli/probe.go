package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resolve-robotics-uri/internal/app"
	"resolve-robotics-uri/internal/shared"
)

type probeOptions struct {
	Path    string
	Profile string
}

func newProbeCommand() *cobra.Command {
	opts := probeOptions{}
	cmd := &cobra.Command{
		Use:   "probe <uri>",
		Short: "List every candidate path for a URI with hit/miss status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(cmd.Context(), cmd, opts, args[0])
		},
	}
	cmd.Flags().StringVar(&opts.Path, "path", "", "Additional search directories (path-list separated)")
	cmd.Flags().StringVar(&opts.Profile, "profile", "", "Search profile file")
	_ = viper.BindPFlag("path", cmd.Flags().Lookup("path"))
	_ = viper.BindPFlag("profile", cmd.Flags().Lookup("profile"))
	return cmd
}

func runProbe(ctx context.Context, cmd *cobra.Command, opts probeOptions, uri string) error {
	service := newAppService()
	result, err := service.Probes(ctx, app.ProbeRequest{
		URI:     uri,
		Paths:   shared.SplitPathList(resolveString(cmd, opts.Path, "path", "path")),
		Profile: resolveString(cmd, opts.Profile, "profile", "profile"),
	})
	if err != nil {
		return err
	}
	hits := map[string]struct{}{}
	for _, hit := range result.Hits {
		hits[hit] = struct{}{}
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "probes for %s: %d\n", result.URI, len(result.Probes))
	for _, probe := range result.Probes {
		status := "miss"
		if _, ok := hits[probe.Path]; ok {
			status = "hit"
		}
		source := string(probe.Root.Provenance)
		if probe.Root.Source != "" {
			source += ":" + probe.Root.Source
		}
		fmt.Fprintf(out, "- [%s] %s (%s, %s layout)\n", status, probe.Path, source, probe.Layout)
	}
	return nil
}
