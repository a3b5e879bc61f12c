package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/ansuz/internal"
	pkgconfig "github.com/starford/ansuz/pkg/config"
)

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "Path to config file",
		DefaultText: "config/config.yaml",
		Value:       "config/config.yaml",
		Sources:     cli.EnvVars("ANSUZ_CONFIG_FILE"),
	}
}

func verboseFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "show more verbose output",
	}
}

// loadConfig builds the effective config: defaults, overlaid by the config
// file when present. An explicitly passed --config that does not exist is
// an error; the default path is allowed to be absent.
func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	path := cmd.String("config")

	loaded, err := pkgconfig.LoadIfPresent(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if !loaded && cmd.IsSet("config") {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	if cmd.Bool("verbose") {
		cfg.App.LogLevel = "debug"
	}
	if !loaded {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
	}
	return cfg, nil
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return internal.Run(ctx,
		internal.WithConfig(cfg),
		internal.WithTargets(cmd.Args().Slice()),
		internal.WithJSONOutput(cmd.Bool("json")),
		internal.WithWatch(cmd.Bool("watch")),
	)
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return internal.RunServe(ctx, internal.WithConfig(cfg))
}

func runMCP(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return internal.RunMCP(ctx, internal.WithConfig(cfg))
}

func main() {
	cmd := &cli.Command{
		Name:      "ansuz",
		Usage:     "Classify targets and extract structured context from local Markdown files",
		ArgsUsage: "[targets...]",
		Action:    run,
		Flags: []cli.Flag{
			configFlag(),
			verboseFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "force output to JSON format",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "keep running and re-inspect markdown targets when they change",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve target inspection over HTTP",
				Flags:  []cli.Flag{configFlag(), verboseFlag()},
				Action: runServe,
			},
			{
				Name:   "mcp",
				Usage:  "Serve inspection tools over MCP stdio",
				Flags:  []cli.Flag{configFlag(), verboseFlag()},
				Action: runMCP,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
