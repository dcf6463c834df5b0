package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/karammi/snowplow/internal/app"
)

// Program is the command name shown in usage text.
const Program = "emr-etl-runner"

// Version is overridden at link time.
var Version = "dev"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet(Program, flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, `
%[1]s - generates Dataflow Runner cluster descriptors and playbooks for the
Snowplow batch pipeline.

Usage:
  %[1]s [options] generate emr-cluster [generate options]
  %[1]s [options] generate playbook [generate options]

Options:
`, Program)
		flagSet.PrintDefaults()
	}

	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	var version bool
	flagSet.BoolVar(&version, "version", false, "Print the version and exit.")
	flagSet.BoolVar(&version, "v", false, "Print the version and exit (shorthand).")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	slog.Debug("Global arguments parsed successfully.")

	if version {
		fmt.Fprintf(output, "%s %s\n", Program, Version)
		return nil, true, nil
	}

	if flagSet.NArg() == 0 {
		slog.Debug("No command provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if cmd := flagSet.Arg(0); cmd != "generate" {
		return nil, false, usageError("unknown command %q: expected 'generate'", cmd)
	}
	if flagSet.NArg() < 2 {
		return nil, false, usageError("generate requires an artifact: 'emr-cluster' or 'playbook'")
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	artifact := flagSet.Arg(1)
	var (
		cfg  *app.Config
		exit bool
		err  error
	)
	switch artifact {
	case app.GeneratorCluster:
		cfg, exit, err = parseCluster(flagSet.Args()[2:], output)
	case app.GeneratorPlaybook:
		cfg, exit, err = parsePlaybook(flagSet.Args()[2:], output)
	default:
		return nil, false, usageError("unknown artifact %q: expected 'emr-cluster' or 'playbook'", artifact)
	}
	if err != nil || exit {
		return nil, exit, err
	}

	cfg.LogFormat = logFormat
	cfg.LogLevel = logLevel
	slog.Debug("CLI parser finished successfully.", "generator", cfg.Generator)
	return cfg, false, nil
}

// commonFlags are shared by both generate subcommands.
type commonFlags struct {
	config         string
	filename       string
	schemaRegistry string
	envFile        string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.config, "config", "", "Configuration file, or '-' to read it from stdin.")
	fs.StringVar(&c.config, "c", "", "Configuration file (shorthand).")
	fs.StringVar(&c.filename, "filename", "", "Path of the artifact to write.")
	fs.StringVar(&c.filename, "f", "", "Path of the artifact to write (shorthand).")
	fs.StringVar(&c.schemaRegistry, "schema-registry", "", "Schema registry URL or local directory. Defaults to Iglu Central.")
	fs.StringVar(&c.envFile, "env-file", "", "Optional .env file whose variables are visible to env() in the configuration.")
}

func newSubcommand(name string, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(Program+" generate "+name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "\nUsage:\n  %s generate %s [options]\n\nOptions:\n", Program, name)
		fs.PrintDefaults()
	}
	return fs
}

func parseSubcommand(fs *flag.FlagSet, args []string) (bool, error) {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return true, nil
		}
		return false, usageError("%s", err.Error())
	}
	if fs.NArg() > 0 {
		return false, usageError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return false, nil
}

func parseCluster(args []string, output io.Writer) (*app.Config, bool, error) {
	fs := newSubcommand(app.GeneratorCluster, output)
	var common commonFlags
	common.register(fs)
	var schemaVersion string
	fs.StringVar(&schemaVersion, "avro-schema-version", "", "Version of the ClusterConfig schema, e.g. 1-1-0.")
	fs.StringVar(&schemaVersion, "a", "", "Version of the ClusterConfig schema (shorthand).")

	if exit, err := parseSubcommand(fs, args); err != nil || exit {
		return nil, exit, err
	}
	return newConfig(app.Config{
		Generator:      app.GeneratorCluster,
		ConfigPath:     common.config,
		EnvFile:        common.envFile,
		Destination:    common.filename,
		SchemaVersion:  schemaVersion,
		SchemaRegistry: common.schemaRegistry,
	})
}

func parsePlaybook(args []string, output io.Writer) (*app.Config, bool, error) {
	fs := newSubcommand(app.GeneratorPlaybook, output)
	var common commonFlags
	common.register(fs)
	var (
		enrichments, resolver, skip, schemaVersion string
		debug                                      bool
	)
	fs.StringVar(&enrichments, "enrichments", "", "Directory of enrichment definitions (*.json).")
	fs.StringVar(&enrichments, "n", "", "Directory of enrichment definitions (shorthand).")
	fs.StringVar(&resolver, "resolver", "", "Iglu resolver file.")
	fs.StringVar(&resolver, "r", "", "Iglu resolver file (shorthand).")
	fs.BoolVar(&debug, "debug", false, "Enable EMR debugging.")
	fs.BoolVar(&debug, "d", false, "Enable EMR debugging (shorthand).")
	fs.StringVar(&skip, "skip", "", "Comma-separated stages to skip: enrich, shred, s3distcp, elasticsearch.")
	fs.StringVar(&skip, "x", "", "Comma-separated stages to skip (shorthand).")
	fs.StringVar(&schemaVersion, "schema-version", "", "Version of the PlaybookConfig schema, e.g. 1-0-0.")

	if exit, err := parseSubcommand(fs, args); err != nil || exit {
		return nil, exit, err
	}
	return newConfig(app.Config{
		Generator:      app.GeneratorPlaybook,
		ConfigPath:     common.config,
		EnvFile:        common.envFile,
		Destination:    common.filename,
		SchemaVersion:  schemaVersion,
		SchemaRegistry: common.schemaRegistry,
		EnrichmentsDir: enrichments,
		ResolverPath:   resolver,
		Debug:          debug,
		Skip:           splitList(skip),
	})
}

func newConfig(cfg app.Config) (*app.Config, bool, error) {
	c, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}
	return c, false, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
