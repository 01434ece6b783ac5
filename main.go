// legisbot - terminal client for the LegisBot document assistant.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/reloguito/legisbot-tui/internal/auth"
	"github.com/reloguito/legisbot-tui/internal/cli"
	"github.com/reloguito/legisbot-tui/internal/config"
	"github.com/reloguito/legisbot-tui/internal/logging"
	"github.com/reloguito/legisbot-tui/internal/ui"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdVersion:
		cli.PrintVersion()
		return
	case cli.CmdHelp:
		cli.PrintUsage()
		return
	}

	cfg, logger, err := loadEnvironment(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	session := buildSession(cfg, logger)

	switch cmd {
	case cli.CmdTUI:
		runTUI(session, logger)
	case cli.CmdAsk:
		exitOnError(cli.HandleAsk(session, args))
	case cli.CmdChat:
		exitOnError(cli.HandleChat(session, args))
	case cli.CmdLogin:
		exitOnError(cli.HandleLogin(session, args))
	case cli.CmdLogout:
		exitOnError(cli.HandleLogout(session, args))
	case cli.CmdRegister:
		exitOnError(cli.HandleRegister(session, args))
	case cli.CmdWhoami:
		exitOnError(cli.HandleWhoami(session, args))
	case cli.CmdHistory:
		exitOnError(cli.HandleHistory(session, args))
	case cli.CmdStats:
		exitOnError(cli.HandleStats(session, args))
	case cli.CmdConfig:
		exitOnError(handleConfig(cfg, args))
	}
}

// loadEnvironment loads the configuration and opens the log file. The TUI
// owns stdout, so diagnostics always go to the rotating file.
func loadEnvironment(args cli.Args) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if args.Verbose {
		cfg.Log.Level = "debug"
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		// A broken log path should not keep the client from running.
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger = zap.NewNop()
	}
	return cfg, logger, nil
}

// buildSession wires the credential store, API client, and session store.
func buildSession(cfg *config.Config, logger *zap.Logger) *auth.Store {
	creds := auth.NewFileCredentialStore(auth.DefaultCredentialPath())

	session := auth.NewStore(cfg.Server.URL, creds, logger)
	session.Client().WithTimeout(time.Duration(cfg.Server.TimeoutSecs) * time.Second)
	return session
}

// runTUI starts the full-screen interface.
func runTUI(session *auth.Store, logger *zap.Logger) {
	program := tea.NewProgram(ui.NewApp(session, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("tui terminated", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// handleConfig prints the effective configuration.
func handleConfig(cfg *config.Config, args cli.Args) error {
	path, err := config.ConfigPath()
	if err != nil {
		path = "(unavailable)"
	}

	fmt.Printf("Config file: %s\n", path)
	fmt.Printf("server.url          = %s\n", cfg.Server.URL)
	fmt.Printf("server.timeout_secs = %d\n", cfg.Server.TimeoutSecs)
	fmt.Printf("log.path            = %s\n", cfg.Log.Path)
	fmt.Printf("log.level           = %s\n", cfg.Log.Level)
	return nil
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
