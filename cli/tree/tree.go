// Package tree contains CLI commands building and inspecting hashed
// prefix tries.
package tree

import (
	"fmt"
	"strings"

	"github.com/trieworks/hashtrie/pkg/config"
	"github.com/trieworks/hashtrie/pkg/trie"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewCommands returns the 'tree' command.
func NewCommands() []*cli.Command {
	buildFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "in",
			Usage: "YAML file with key-value pairs to insert",
		},
		&cli.BoolFlag{
			Name:  "dump",
			Usage: "Print the resulting trie structure",
		},
		&cli.BoolFlag{
			Name:  "verify",
			Usage: "Run an integrity check over the resulting trie",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
	return []*cli.Command{
		{
			Name:  "tree",
			Usage: "Build and inspect hashed prefix tries",
			Subcommands: []*cli.Command{
				{
					Name:      "build",
					Usage:     "Build a trie from key-value pairs and print its root hash",
					UsageText: "hashtrie tree build [--in pairs.yml] [--dump] [--verify] [--debug] [key=value ...]",
					Action:    build,
					Flags:     buildFlags,
				},
			},
		},
	}
}

func build(ctx *cli.Context) error {
	cfg, err := getConfigFromContext(ctx)
	if err != nil {
		return cli.Exit(err, 1)
	}
	logger, err := handleLoggingParams(ctx.Bool("debug"), cfg)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer func() { _ = logger.Sync() }()

	tr := trie.New(trie.NewStore(), trie.WithLogger(logger))
	for _, p := range cfg.Pairs {
		if err := tr.Put([]byte(p.Key), []byte(p.Value)); err != nil {
			return cli.Exit(fmt.Errorf("failed to insert %q: %w", p.Key, err), 1)
		}
	}

	root := "<empty>"
	if h := tr.Root(); h != nil {
		root = "0x" + h.String()
	}
	fmt.Fprintf(ctx.App.Writer, "root: %s\n", root)
	fmt.Fprintf(ctx.App.Writer, "keys: %d\n", tr.Len())

	if ctx.Bool("dump") {
		if err := tr.DumpTo(ctx.App.Writer); err != nil {
			return cli.Exit(err, 1)
		}
	}
	if ctx.Bool("verify") {
		if !tr.VerifyIntegrity() {
			return cli.Exit("integrity check failed", 1)
		}
		fmt.Fprintln(ctx.App.Writer, "integrity check passed")
	}
	return nil
}

// getConfigFromContext merges the optional YAML config with positional
// key=value arguments, the latter are inserted last.
func getConfigFromContext(ctx *cli.Context) (config.Config, error) {
	var cfg config.Config
	if path := ctx.String("in"); path != "" {
		var err error
		cfg, err = config.LoadFile(path)
		if err != nil {
			return cfg, err
		}
	}
	for _, arg := range ctx.Args().Slice() {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || len(k) == 0 {
			return cfg, fmt.Errorf("invalid key=value pair: %q", arg)
		}
		cfg.Pairs = append(cfg.Pairs, config.KeyValue{Key: k, Value: v})
	}
	return cfg, nil
}

// handleLoggingParams reads the logging parameters. If the user selected
// the debug level, the function enables it.
func handleLoggingParams(debug bool, cfg config.Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if len(cfg.LogLevel) > 0 {
		var err error
		level, err = zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("log setting: %w", err)
		}
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = "console"
	cc.Level = zap.NewAtomicLevelAt(level)
	cc.Sampling = nil

	return cc.Build()
}
