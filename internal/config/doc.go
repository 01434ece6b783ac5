// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the legisbot client.
//
// Configuration sources, in order of precedence:
//   - Environment variables (LEGISBOT_*)
//   - ~/.legisbot/config.toml
//   - Built-in defaults
//
// A .env file in the working directory is loaded first during development.
package config
