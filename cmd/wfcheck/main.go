// Package main is the entry point for the wfcheck CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mizunashi/wfcheck/internal/app"
	"github.com/mizunashi/wfcheck/internal/cli"
	"github.com/mizunashi/wfcheck/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		// The report for threshold failures is already on stdout.
		if !errors.Is(err, cli.ErrCheckFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	container, err := app.New(cwd)
	if err != nil {
		// Allow rules, init --global, help and version outside a repository
		if errors.Is(err, domain.ErrNotGitRepository) {
			return runWithoutContainer(err)
		}
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer container.Close()

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// runWithoutContainer handles cases where no git repository is found.
func runWithoutContainer(repoErr error) error {
	if canRunWithoutRepo(os.Args[1:]) {
		rootCmd := cli.NewRootCommand(nil, version)
		return rootCmd.Execute()
	}
	return repoErr
}

func canRunWithoutRepo(args []string) bool {
	if len(args) == 0 {
		return true
	}
	switch args[0] {
	case "help", "rules", "init":
		return true
	}
	for _, arg := range args {
		if arg == "--version" || arg == "-v" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
