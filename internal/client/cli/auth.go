package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/movieshelf/internal/client/storage"
	"github.com/iudanet/movieshelf/internal/validation"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	if err := validation.ValidateUsername(username); err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}

	password, err := c.readNewPassword()
	if err != nil {
		return err
	}

	resp, err := c.auth.Register(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("Username: %s\n", username)
	c.io.Printf("User ID:  %s\n", resp.UserID)
	c.io.Println()
	c.io.Println("Run 'movieshelf login' to start a session.")

	return nil
}

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.readPassword("Password: ")
	if err != nil {
		return err
	}

	authData, err := c.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", authData.Username)
	c.io.Printf("Session valid until: %s\n", time.Unix(authData.ExpiresAt, 0).Format(time.RFC3339))

	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.auth.Logout(ctx); err != nil {
		return err
	}
	c.io.Println("✓ Logged out")
	return nil
}

// requireLogin проверяет наличие сохраненной сессии
func (c *Cli) requireLogin(ctx context.Context) (*storage.AuthData, error) {
	authData, err := c.auth.Current(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, fmt.Errorf("not authenticated. Please run 'movieshelf login' first")
		}
		return nil, fmt.Errorf("failed to get auth data: %w", err)
	}
	return authData, nil
}

// readPassword берет пароль из окружения, иначе спрашивает
func (c *Cli) readPassword(prompt string) (string, error) {
	if password := c.password(); password != "" {
		return password, nil
	}

	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}

// readNewPassword читает пароль с подтверждением при интерактивном вводе
func (c *Cli) readNewPassword() (string, error) {
	if password := c.password(); password != "" {
		if err := validation.ValidatePassword(password); err != nil {
			return "", fmt.Errorf("invalid password: %w", err)
		}
		return password, nil
	}

	password, err := c.readPassword("Password: ")
	if err != nil {
		return "", err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return "", fmt.Errorf("invalid password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if confirm != password {
		return "", fmt.Errorf("passwords do not match")
	}
	return password, nil
}
