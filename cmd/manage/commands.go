package main

import (
	"fmt"
	"net/http"
	"os"

	"codeberg.org/algorave/viewkit/internal/config"
	"codeberg.org/algorave/viewkit/internal/errors"
	"codeberg.org/algorave/viewkit/internal/management"
	"github.com/charmbracelet/glamour"
)

const helpText = `# manage

Developer commands for the viewkit server.

| command | description |
|---|---|
| ` + "`styles`" + ` | show every output style |
| ` + "`config [-env]`" + ` | show the parsed configuration, or the raw environment |
| ` + "`codes [-style S] [-method M]`" + ` | list status codes and how error responses treat them |
| ` + "`token [-user ID] [-email E] [-name N]`" + ` | print a JWT for a test user |
| ` + "`help`" + ` | show this message |

Secrets are always masked.
`

var envKeys = []string{
	"ENVIRONMENT",
	"PORT",
	"DEBUG",
	"DEBUG_MULTILINE",
	"BASE_DIR",
	"JWT_SECRET",
	"SESSION_SECRET",
	"DATABASE_URL",
	"RATE_LIMIT",
}

var secretKeys = map[string]bool{
	"JWT_SECRET":     true,
	"SESSION_SECRET": true,
	"DATABASE_URL":   true,
}

func renderHelp(width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	return r.Render(helpText)
}

func showConfig(cmd *management.Command, flags config.Flags) error {
	if flags.Env {
		cmd.Write(cmd.Style.HTTPInfo("Environment:"))
		cmd.WriteMapping(rawEnvironment(), true)
		return nil
	}

	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		return err
	}

	cmd.Write(cmd.Style.HTTPInfo("Configuration:"))
	cmd.WriteMapping(cfg.Mapping(), true)

	return nil
}

// set environment variables the server reads, secrets masked
func rawEnvironment() map[string]any {
	env := make(map[string]any, len(envKeys))

	for _, key := range envKeys {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}

		if secretKeys[key] && v != "" {
			v = "********"
		}

		env[key] = v
	}

	return env
}

func showCodes(cmd *management.Command, flags config.Flags) error {
	method, err := management.ParseMethod(flags.Method)
	if err != nil {
		return err
	}

	cmd.Rule("=")
	err = cmd.WriteItems(statusItems(), flags.Style, method)
	cmd.Rule("=")

	return err
}

// one line per registered status code
func statusItems() []any {
	var items []any

	for code := 100; code <= 599; code++ {
		text := http.StatusText(code)
		if text == "" {
			continue
		}

		items = append(items, fmt.Sprintf("%d %-32s %-13s error_code=%t",
			code, text, errors.Classify(code), errors.IsValidErrorCode(code)))
	}

	return items
}
