package cli

import (
	"context"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/ardnew/pyson/cli/cmd"
	"github.com/ardnew/pyson/log"
	"github.com/ardnew/pyson/pkg"
)

// baseConfig is the base name of the configuration file.
const baseConfig = "config"

// CLI is the top-level command-line interface for pyson.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	Dump  cmd.Dump  `cmd:"" default:"withargs" help:"Print every record of a source (default)."`
	Get   cmd.Get   `cmd:""                    help:"Print the value of one key."`
	Check cmd.Check `cmd:""                    help:"Report whether sources decode."`
	Fmt   cmd.Fmt   `cmd:""                    help:"Convert a source to JSON or YAML."`
	Eval  cmd.Eval  `cmd:""                    help:"Evaluate an expression over the keys of a source."`
}

// Run executes the pyson CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return run(ctx, exit, pkg.ConfigPath(baseConfig), args)
}

func run(
	ctx context.Context,
	exit func(code int),
	configFile string,
	args []string,
	opts ...kong.Option,
) error {
	var cli CLI

	vars := kong.Vars{
		"version": pkg.Name + " " + pkg.Version(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Logger flags take effect before parsing so that configuration and
	// usage errors are logged as requested, wherever the flags appear.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		append([]kong.Option{
			kong.Name(pkg.Name),
			kong.Description(pkg.Description),
			kong.UsageOnError(),
			kong.Exit(exit),
			kong.ExplicitGroups(
				[]kong.Group{cli.Log.group(), cli.Pprof.group()},
			),
			kong.BindSingletonProvider(func() context.Context {
				return ctx
			}),
			kong.ConfigureHelp(
				kong.HelpOptions{
					Compact:             true,
					Summary:             true,
					Tree:                true,
					NoExpandSubcommands: true,
				}),
			kong.Configuration(resolve(ctx), configFile),
			vars,
		}, opts...)...,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)

	cli.Log.start(ctx)

	log.DebugContext(ctx, "run",
		slog.String("command", ktx.Command()),
		slog.String("config", configFile),
	)

	// No-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run()
}
