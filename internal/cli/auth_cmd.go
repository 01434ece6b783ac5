// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// auth_cmd.go - login, logout, register, and whoami commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/reloguito/legisbot-tui/internal/api"
	"github.com/reloguito/legisbot-tui/internal/auth"
)

// promptPassword reads a password without echo.
func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	passBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(passBytes), nil
}

// HandleLogin signs in and stores the credential for later runs.
func HandleLogin(session *auth.Store, args Args) error {
	if !isInteractive() {
		return fmt.Errorf("login requiere una terminal")
	}

	email := strings.TrimSpace(promptInput("Email: "))
	if email == "" {
		return fmt.Errorf("el email no puede estar vacío")
	}
	password, err := promptPassword("Contraseña: ")
	if err != nil {
		return err
	}

	user, err := session.Login(context.Background(), email, password)
	if err != nil {
		return fmt.Errorf("%s", api.ServerMessage(err, "Error al iniciar sesión"))
	}

	fmt.Printf("Sesión iniciada como %s.\n", user.DisplayName())
	if !user.HasCompletedOnboarding {
		fmt.Println("Tu perfil está incompleto: abrí 'legisbot' para completarlo.")
	}
	return nil
}

// HandleLogout removes the stored credential. Never fails: a missing
// credential is already the desired end state.
func HandleLogout(session *auth.Store, args Args) error {
	session.Logout()
	fmt.Println("Sesión cerrada.")
	return nil
}

// HandleRegister creates an account and leaves it signed in.
func HandleRegister(session *auth.Store, args Args) error {
	if !isInteractive() {
		return fmt.Errorf("register requiere una terminal")
	}

	email := strings.TrimSpace(promptInput("Email: "))
	if email == "" {
		return fmt.Errorf("el email no puede estar vacío")
	}
	password, err := promptPassword("Contraseña: ")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Repetir contraseña: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("las contraseñas no coinciden")
	}

	user, err := session.Register(context.Background(), email, password)
	if err != nil {
		return fmt.Errorf("%s", api.ServerMessage(err, "Error al registrarse"))
	}

	fmt.Printf("Cuenta creada. Sesión iniciada como %s.\n", user.Email)
	fmt.Println("Abrí 'legisbot' para completar tu perfil.")
	return nil
}

// HandleWhoami prints the signed-in account.
func HandleWhoami(session *auth.Store, args Args) error {
	ctx := context.Background()
	if err := requireSession(ctx, session); err != nil {
		return err
	}
	user := session.User()

	if args.JSON {
		return outputJSON(user)
	}

	fmt.Printf("Email: %s\n", user.Email)
	fmt.Printf("Rol: %s\n", user.Role)
	if user.FirstName != "" {
		fmt.Printf("Nombre: %s\n", user.DisplayName())
	}
	if !user.HasCompletedOnboarding {
		fmt.Println("Perfil incompleto.")
	}
	return nil
}
