// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for legisbot.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdChat
	CmdLogin
	CmdLogout
	CmdRegister
	CmdWhoami
	CmdHistory
	CmdStats
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	JSON    bool // Output in JSON format where supported
	Verbose bool

	// Command-specific
	Query      string
	Subcommand string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `legisbot - terminal client for the LegisBot document assistant

LegisBot answers natural-language questions about indexed legislative
documents and cites the pages the answer came from.

Usage:
  legisbot                    Start the full-screen interface (default)
  legisbot ask "pregunta"     Ask a single question and exit
  legisbot chat               Interactive chat loop
  legisbot login              Sign in and store the credential
  legisbot logout             Remove the stored credential
  legisbot register           Create an account
  legisbot whoami             Show the signed-in account
  legisbot history [show <id>] List stored conversations
  legisbot stats              Usage statistics (admin only)
  legisbot config [show]      Show the effective configuration
  legisbot version            Show version information
  legisbot help               Show this help

Flags:
  --json       Machine-readable output (ask, whoami, history, stats, config)
  --verbose    Log at debug level for this run

Examples:
  legisbot ask "¿Qué dice la ley 27.275 sobre acceso a la información?"
  legisbot history show 12
  legisbot stats --json

Environment:
  LEGISBOT_SERVER_URL     Override the server base URL
  LEGISBOT_TIMEOUT_SECS   Override the request timeout
  LEGISBOT_LOG_PATH       Override the log file location
  LEGISBOT_LOG_LEVEL      Override the log level

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("legisbot version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	args := os.Args[1:]

	remaining, parsedArgs := parseGlobalFlags(args)

	// No remaining args: start the TUI.
	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsedArgs

	case "ask":
		parsedArgs.Query = strings.Join(remaining, " ")
		return CmdAsk, parsedArgs

	case "chat":
		return CmdChat, parsedArgs

	case "login":
		return CmdLogin, parsedArgs

	case "logout":
		return CmdLogout, parsedArgs

	case "register", "signup":
		return CmdRegister, parsedArgs

	case "whoami", "me":
		return CmdWhoami, parsedArgs

	case "history", "historial":
		if len(remaining) > 0 {
			parsedArgs.Subcommand = remaining[0]
		}
		return CmdHistory, parsedArgs

	case "stats", "statistics", "estadisticas":
		return CmdStats, parsedArgs

	case "config":
		if len(remaining) > 0 {
			parsedArgs.Subcommand = remaining[0]
		}
		return CmdConfig, parsedArgs

	case "version", "-v", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		// Unknown command: treat the whole line as a question.
		parsedArgs.Query = strings.Join(append([]string{cmd}, remaining...), " ")
		return CmdAsk, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	for _, arg := range args {
		switch arg {
		case "--json":
			parsedArgs.JSON = true
		case "--verbose":
			parsedArgs.Verbose = true
		default:
			remaining = append(remaining, arg)
		}
	}
	return remaining, parsedArgs
}
