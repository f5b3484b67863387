package cli

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/satooru65536/projfeed/pkg/cli/config"
	"github.com/satooru65536/projfeed/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func fetchCommand() *cli.Command {
	var (
		feed   config.Feed
		github config.GitHub
		cache  config.Cache
		pretty bool
	)

	return &cli.Command{
		Name:    "fetch",
		Aliases: []string{"f"},
		Usage:   "Build the projects feed once and print it as JSON",
		Flags: slice.Flatten(
			[]cli.Flag{
				&cli.BoolFlag{
					Name:        "pretty",
					Usage:       "Indent JSON output",
					Destination: &pretty,
				},
			},
			feed.Flags(),
			github.Flags(),
			cache.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Debug("starting fetch",
				slog.Any("Feed", feed),
				slog.Any("GitHub", github),
				slog.Any("Cache", cache),
			)

			uc, closer, err := newUseCase(ctx, &feed, &github, &cache)
			if err != nil {
				return err
			}
			defer closer()

			projects, err := uc.GetProjects(ctx)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(c.Root().Writer)
			if pretty {
				encoder.SetIndent("", "  ")
			}
			if err := encoder.Encode(projects); err != nil {
				return goerr.Wrap(err, "failed to write projects")
			}

			return nil
		},
	}
}
