package config

import (
	"flag"
	"os"
)

// parses CLI flags for the config subcommand
func ParseConfigFlags() Flags {
	args := os.Args[2:]

	fs := flag.NewFlagSet("config", flag.ExitOnError)
	env := fs.Bool("env", false, "print the raw environment instead of the parsed config")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return Flags{Env: *env}
}

// parses CLI flags for the codes subcommand
func ParseCodesFlags() Flags {
	args := os.Args[2:]

	fs := flag.NewFlagSet("codes", flag.ExitOnError)
	style := fs.String("style", "SQL_COLTYPE", "output style (SQL_COLTYPE or SQL_KEYWORD)")
	method := fs.String("method", "str", "printing method (str or repr)")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return Flags{Style: *style, Method: *method}
}

// returns default flags for the codes subcommand
func DefaultCodesFlags() Flags {
	return Flags{Style: "SQL_COLTYPE", Method: "str"}
}

// parses CLI flags for the token subcommand
func ParseTokenFlags() Flags {
	args := os.Args[2:]

	fs := flag.NewFlagSet("token", flag.ExitOnError)
	userID := fs.String("user", "", "user id to sign, skips the database lookup")
	email := fs.String("email", "test@example.com", "email of the test user")
	name := fs.String("name", "Test User", "name of the test user")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return Flags{UserID: *userID, Email: *email, Name: *name}
}
