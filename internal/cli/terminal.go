// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"

	"golang.org/x/term"
)

// isInteractive reports whether stdin is attached to a terminal. Credential
// prompts refuse to run when it is not, rather than echo a password into a
// pipe.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// terminalWidth returns the stdout width, or a sane default when stdout is
// not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
