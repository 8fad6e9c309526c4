package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hyper/internal/config"
	hypererrors "github.com/vango-dev/hyper/internal/errors"
	"github.com/vango-dev/hyper/pkg/markup"
	"github.com/vango-dev/hyper/pkg/render"
)

func renderCmd(load func() (*config.Config, error)) *cobra.Command {
	var (
		async    bool
		all      bool
		jsonDiag bool
		p        = defaultParams()
	)

	cmd := &cobra.Command{
		Use:   "render [page]",
		Short: "Render a demo page to stdout",
		Long: `Render one of the demo pages and print the HTML.

Render failures are reported with a coded diagnostic. Use --all to
render every working page concurrently.`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return pageNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if all {
				var names []string
				var nodes []markup.Node
				for _, name := range pageNames() {
					if demos[name].Fails {
						continue
					}
					names = append(names, name)
					nodes = append(nodes, demos[name].Build(ctx, p))
				}
				renderer := render.NewRenderer(render.RendererConfig{Async: true})
				pages, err := renderer.RenderMany(ctx, nodes, 0)
				if err != nil {
					return report(cmd, err, jsonDiag)
				}
				for i, page := range pages {
					success(cmd.ErrOrStderr(), "%s: %d bytes", names[i], len(page))
				}
				return nil
			}

			name := "home"
			if len(args) == 1 {
				name = args[0]
			}
			d, ok := demos[name]
			if !ok {
				return hypererrors.New("H141").
					WithSuggestion("Pick one of: " + strings.Join(pageNames(), ", "))
			}

			renderer := render.NewRenderer(render.RendererConfig{
				Async: async || d.Async || cfg.Render.Async,
			})
			html, err := renderer.RenderToString(ctx, d.Build(ctx, p))
			if err != nil {
				return report(cmd, err, jsonDiag)
			}
			fmt.Fprintln(out, html)
			return nil
		},
	}

	cmd.Flags().BoolVar(&async, "async", false, "Render with the async iterator")
	cmd.Flags().BoolVar(&all, "all", false, "Render every working demo page concurrently")
	cmd.Flags().BoolVar(&jsonDiag, "json", false, "Print diagnostics as JSON")
	cmd.Flags().StringVar(&p.Theme, "theme", p.Theme, "Theme provided to the page (light or dark)")
	cmd.Flags().StringVar(&p.User, "user", p.User, "User provided to the page")
	cmd.Flags().IntVar(&p.Rows, "rows", p.Rows, "Number of rows or events")

	return cmd
}

// report converts a render failure into a diagnostic. In JSON mode the
// diagnostic is printed and a short error returned.
func report(cmd *cobra.Command, err error, asJSON bool) error {
	d := hypererrors.Describe(err)
	if asJSON {
		fmt.Fprintln(cmd.OutOrStdout(), d.FormatJSON())
		return fmt.Errorf("render failed with %s", d.Code)
	}
	return d
}

func pageNames() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
