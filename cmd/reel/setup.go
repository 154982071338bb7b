package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/reel/internal/adapter"
	"github.com/mmcdole/reel/internal/adapter/source"
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/tui/styles"
)

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                    \r"

const verifyTimeout = 15 * time.Second

var setupSkipVerify bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Store an OMDb API key in the config file",
	Long: `Prompt for an OMDb API key, check it with a single lookup and save it
to the config file (mode 0600). The key can also be supplied with the
REEL_OMDB_API_KEY environment variable instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, closeLog, err := loadSettings()
		if err != nil {
			return err
		}
		defer func() { _ = closeLog() }()

		fmt.Println()
		fmt.Println("Get a free key at https://www.omdbapi.com/apikey.aspx")
		fmt.Println()

		key, err := promptAPIKey()
		if err != nil {
			return err
		}
		if key == "" {
			return domain.ErrMissingAPIKey
		}

		if !setupSkipVerify {
			err := withSpinner("Checking key...", func() error {
				ctx, cancel := context.WithTimeout(cmd.Context(), verifyTimeout)
				defer cancel()
				return source.VerifyAPIKey(ctx, &cfg.OMDb, key, logger)
			})
			if err != nil {
				fmt.Printf("✗ %v\n", err)
				return errors.New("API key was not saved")
			}
			fmt.Println("✓ Key accepted")
		}

		cfg.OMDb.APIKey = key
		if err := adapter.SaveConfig(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Println()
		fmt.Printf("✓ Configuration saved to %s\n", adapter.ConfigFilePath())
		fmt.Println()
		fmt.Println("Run reel to start browsing.")
		return nil
	},
}

func init() {
	setupCmd.Flags().BoolVar(&setupSkipVerify, "skip-verify", false,
		"save the key without checking it against OMDb")
	rootCmd.AddCommand(setupCmd)
}

// promptAPIKey reads the key without echo when stdin is a terminal
func promptAPIKey() (string, error) {
	fmt.Print("OMDb API key: ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		keyBytes, err := term.ReadPassword(fd)
		fmt.Println() // Add newline after hidden input
		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}
		return strings.TrimSpace(string(keyBytes)), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// withSpinner runs fn while animating a spinner with label
func withSpinner(label string, fn func() error) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- fn()
	}()

	frame := 0
	fmt.Printf("\r%s %s", styles.SpinnerFrames[frame], label)

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case err := <-errCh:
			fmt.Print(clearSpinnerLine)
			return err
		case <-ticker.C:
			frame++
			fmt.Printf("\r%s %s", styles.SpinnerFrames[frame%len(styles.SpinnerFrames)], label)
		}
	}
}
