package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"entrycheck/pkg/client"
	"entrycheck/pkg/config"
	"entrycheck/pkg/logger"
	"entrycheck/pkg/model"
	"entrycheck/pkg/sanitizer"
)

const (
	flagVariant  = "variant"
	flagJSON     = "json"
	flagField    = "field"
	flagLogLevel = "log-level"
	flagServer   = "server"

	envServer = "ENTRYCHECK_SERVER"
)

func main() {
	config.LoadDotEnvUp(config.DefaultDotEnvDepth)
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code: 0 for a valid
// entry, 1 for an invalid one, 2 for usage errors.
func run(args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)

	if err := app.Run(args); err != nil {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			if msg := exitErr.Error(); msg != "" {
				fmt.Fprintln(stderr, msg)
			}
			return exitErr.ExitCode()
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	return 0
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "entrycheck",
		Usage:     "validate and format confirmation codes and U.S. phone numbers",
		Writer:    stdout,
		ErrWriter: stderr,
		// exit codes are handled by run
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagVariant,
				Value:   string(sanitizer.DefaultVariant),
				Usage:   "separator rules: minimal or extended",
				EnvVars: []string{config.EnvSeparatorVariant},
			},
			&cli.BoolFlag{
				Name:  flagJSON,
				Usage: "print the full result record as JSON",
			},
			&cli.StringFlag{
				Name:  flagField,
				Usage: "field name used in messages",
			},
			&cli.StringFlag{
				Name:    flagServer,
				Usage:   "base URL of an entries service to check against instead of parsing locally",
				EnvVars: []string{envServer},
			},
			&cli.StringFlag{
				Name:    flagLogLevel,
				Value:   logger.WARN,
				Usage:   "log level for diagnostics written to stderr",
				EnvVars: []string{config.EnvLogLevel},
			},
		},
		Commands: []*cli.Command{
			{
				Name:      string(model.KindCode),
				Usage:     "check an 8-digit confirmation code",
				ArgsUsage: "<value>",
				Action: func(c *cli.Context) error {
					return check(c, model.KindCode)
				},
			},
			{
				Name:      string(model.KindPhone),
				Usage:     "check a U.S. phone number",
				ArgsUsage: "<value>",
				Action: func(c *cli.Context) error {
					return check(c, model.KindPhone)
				},
			},
		},
	}
}

// outcome is what one CLI invocation learned about the entry.
type outcome struct {
	valid     bool
	formatted string
	original  string
	cleaned   string
	message   string
	result    any
}

func check(c *cli.Context, kind model.EntryKind) error {
	if c.NArg() != 1 {
		return cli.Exit(fmt.Sprintf("usage: %s %s <value>", c.App.Name, kind), 2)
	}

	variant, err := sanitizer.ParseVariant(c.String(flagVariant))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	log := logger.New(logger.Config{
		Level:  c.String(flagLogLevel),
		Format: logger.TEXT,
		Output: c.App.ErrWriter,
	})

	field := c.String(flagField)
	if field == "" {
		field = kind.DefaultField()
	}

	var out outcome
	if server := c.String(flagServer); server != "" {
		out, err = evaluateRemote(c.Context, client.NewEntriesClient(server), kind, c.Args().First(), field)
		if err != nil {
			log.Error("Remote check failed", "server", server, "error", err)
			return cli.Exit(err.Error(), 2)
		}
	} else {
		out = evaluate(sanitizer.NewParserForVariant(variant), kind, c.Args().First(), field)
	}

	log.Debug("Entry checked",
		"kind", kind,
		"variant", variant,
		"valid", out.valid,
	)

	w := c.App.Writer
	if c.Bool(flagJSON) {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out.result); err != nil {
			return cli.Exit(fmt.Sprintf("failed to encode result: %v", err), 2)
		}
		if !out.valid {
			return cli.Exit("", 1)
		}
		return nil
	}

	if out.valid {
		fmt.Fprintln(w, out.formatted)
		return nil
	}

	if out.cleaned != out.original {
		fmt.Fprintf(w, "cleaned: %s\n", out.cleaned)
	}
	return cli.Exit(out.message, 1)
}

func evaluate(parser *sanitizer.Parser, kind model.EntryKind, raw, field string) outcome {
	resolver := parser.Resolver()

	if kind == model.KindCode {
		res := parser.ParseCode(raw)
		return outcome{
			valid:     res.IsValid,
			formatted: res.Formatted,
			original:  res.OriginalValue,
			cleaned:   res.CleanedValue,
			message:   resolver.ForCode(res, field),
			result:    res,
		}
	}

	res := parser.ParsePhone(raw)
	return outcome{
		valid:     res.IsValid,
		formatted: res.Formatted,
		original:  res.OriginalValue,
		cleaned:   res.CleanedValue,
		message:   resolver.ForPhone(res, field),
		result:    res,
	}
}

// evaluateRemote asks the entries service. The variant is whatever the
// service was started with.
func evaluateRemote(ctx context.Context, c *client.EntriesClient, kind model.EntryKind, raw, field string) (outcome, error) {
	resp, err := c.Parse(ctx, model.EntryRequest{Kind: kind, Field: field, Value: raw})
	if err != nil {
		return outcome{}, err
	}

	result, _ := resp.Result.(map[string]any)
	str := func(key string) string {
		s, _ := result[key].(string)
		return s
	}

	return outcome{
		valid:     resp.Valid,
		formatted: str("formatted"),
		original:  raw,
		cleaned:   str("cleanedValue"),
		message:   resp.Message,
		result:    resp.Result,
	}, nil
}
