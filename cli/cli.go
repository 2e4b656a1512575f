package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/pcomb/cli/cmd"
	"github.com/ardnew/pcomb/pkg"
)

// CLI is the top-level command-line interface for pcomb.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Path    []string         `help:"Directories searched for relative source files, ahead of those listed in ${envPath}." short:"P"`
	Version kong.VersionFlag `help:"Print version and exit."                                                            short:"V"`

	Parse cmd.Parse `cmd:"" help:"Parse JSON documents and print them as JSON or YAML."`
	Check cmd.Check `cmd:"" help:"Validate JSON documents."`
	Query cmd.Query `cmd:"" help:"Evaluate an expression against JSON documents."`
	Repl  cmd.Repl  `cmd:"" help:"Explore a JSON document interactively."`
	Init  cmd.Init  `cmd:"" help:"Initialize configuration file."`
}

// Run executes the pcomb CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFile := pkg.ConfigFile()

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFile,
		cmd.CacheIdentifier:  pkg.CacheDir(),
		"envPath":            pkg.EnvPath,
		"version":            pkg.Version,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags so that they apply regardless of position,
	// including boolean flags kong never routes through UnmarshalText.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
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
		kong.Configuration(loadJSON, jsonConfigFile()),
		kong.Configuration(loadYAML, configFile),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSearchPath(ctx, searchPath(cli.Path))

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}
