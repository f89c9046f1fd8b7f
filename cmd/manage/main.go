package main

import (
	"fmt"
	"io"
	"os"

	"codeberg.org/algorave/viewkit/internal/config"
	"codeberg.org/algorave/viewkit/internal/logger"
	"codeberg.org/algorave/viewkit/internal/management"
)

func main() {
	if len(os.Args) < 2 {
		if err := printHelp(os.Stdout); err != nil {
			logger.FatalErr(err, "failed to render help")
		}
		os.Exit(2)
	}

	cmd := management.NewCommand(os.Stdout)

	if err := run(cmd, os.Args[1]); err != nil {
		cmd.Write(cmd.Style.Error(err.Error()))
		os.Exit(1)
	}
}

func run(cmd *management.Command, name string) error {
	switch name {
	case "styles":
		cmd.ShowStyles()
		return nil
	case "config":
		return showConfig(cmd, config.ParseConfigFlags())
	case "codes":
		return showCodes(cmd, config.ParseCodesFlags())
	case "token":
		return issueToken(cmd, config.ParseTokenFlags())
	case "help", "-h", "--help":
		return printHelp(cmd.Stdout)
	default:
		return fmt.Errorf("unknown command %q, run \"manage help\"", name)
	}
}

func printHelp(w io.Writer) error {
	out, err := renderHelp(management.Width(w))
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	return err
}
