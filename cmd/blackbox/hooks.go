// Package main git hook installation and environment checks.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

const hookMarker = "# installed by blackbox"

const postCommitHook = `#!/bin/sh
` + hookMarker + `
project=$(basename "$(git rev-parse --show-toplevel)")
message=$(git log -1 --pretty=%B)
hash=$(git rev-parse HEAD)
user=$(git config user.name)
blackbox auto-commit --project "$project" --message "$message" --commit-hash "$hash" --git-user "$user" >/dev/null 2>&1 || true
`

func hooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "Git hook management",
	}

	var force bool
	installCmd := &cobra.Command{
		Use:   "install",
		Short: "Install the post-commit hook in the current repository",
		Run: func(cmd *cobra.Command, args []string) {
			hookPath, err := postCommitPath()
			if err != nil {
				fail("%v", err)
			}
			if existing, err := os.ReadFile(hookPath); err == nil {
				if !strings.Contains(string(existing), hookMarker) && !force {
					fail("%s already exists and was not installed by blackbox (use --force to overwrite)", hookPath)
				}
			}
			if err := os.WriteFile(hookPath, []byte(postCommitHook), 0o755); err != nil {
				fail("writing hook: %v", err)
			}
			success("post-commit hook installed at %s", hookPath)
		},
	}
	installCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing post-commit hook")

	uninstallCmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the blackbox post-commit hook",
		Run: func(cmd *cobra.Command, args []string) {
			hookPath, err := postCommitPath()
			if err != nil {
				fail("%v", err)
			}
			existing, err := os.ReadFile(hookPath)
			if err != nil {
				success("no post-commit hook installed")
				return
			}
			if !strings.Contains(string(existing), hookMarker) {
				fail("%s was not installed by blackbox; not touching it", hookPath)
			}
			if err := os.Remove(hookPath); err != nil {
				fail("removing hook: %v", err)
			}
			success("post-commit hook removed")
		},
	}

	cmd.AddCommand(installCmd, uninstallCmd)
	return cmd
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the API is reachable and hooks are installed",
		Run: func(cmd *cobra.Command, args []string) {
			ok := true

			if err := apiClient.Health(cmd.Context()); err != nil {
				errorColor.Printf("✗ API unreachable: %v\n", err)
				ok = false
			} else {
				successColor.Println("✓ API reachable")
			}

			hookPath, err := postCommitPath()
			switch {
			case err != nil:
				labelColor.Println("- not inside a git repository, skipping hook check")
			default:
				content, readErr := os.ReadFile(hookPath)
				if readErr != nil || !strings.Contains(string(content), hookMarker) {
					errorColor.Println("✗ post-commit hook not installed (run 'blackbox hooks install')")
					ok = false
				} else {
					successColor.Println("✓ post-commit hook installed")
				}
			}

			if !ok {
				os.Exit(1)
			}
		},
	}
}

// postCommitPath resolves the post-commit hook path for the enclosing
// git repository, following worktree indirection via rev-parse.
func postCommitPath() (string, error) {
	out, err := exec.Command("git", "rev-parse", "--git-dir").Output()
	if err != nil {
		return "", fmt.Errorf("not inside a git repository")
	}
	gitDir := strings.TrimSpace(string(out))
	return filepath.Join(gitDir, "hooks", "post-commit"), nil
}
