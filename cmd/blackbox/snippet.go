// Package main code snippet commands.
package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"blackbox/client"
)

func snippetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snippet",
		Short: "Code snippet commands",
	}

	// blackbox snippet add <project-id> <file>
	var language string
	addCmd := &cobra.Command{
		Use:   "add [project-id] [file]",
		Short: "Store a source file as a snippet",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			code, err := os.ReadFile(args[1])
			if err != nil {
				fail("reading %s: %v", args[1], err)
			}
			filename := filepath.Base(args[1])
			snippet, err := apiClient.CreateSnippet(cmd.Context(), client.SnippetCreate{
				ProjectID: parseID(args[0]),
				Filename:  &filename,
				Language:  language,
				Code:      string(code),
			})
			exitOnError(err)
			success("Snippet stored: id=%d file=%s language=%s", snippet.ID, filename, snippet.Language)
		},
	}
	addCmd.Flags().StringVar(&language, "language", "", "Snippet language (default \"generic\")")

	// blackbox snippet get <id>
	getCmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Show a snippet",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			snippet, err := apiClient.GetSnippet(cmd.Context(), parseID(args[0]))
			exitOnError(err)
			printJSON(snippet)
		},
	}

	// blackbox snippet list
	var skip, limit int
	var project int64
	var lang string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List snippets",
		Run: func(cmd *cobra.Command, args []string) {
			snippets, err := apiClient.ListSnippets(cmd.Context(), int64Ptr(project), lang, client.Page{Skip: skip, Limit: limit})
			exitOnError(err)
			printJSON(snippets)
		},
	}
	listCmd.Flags().IntVar(&skip, "skip", 0, "Number of snippets to skip")
	listCmd.Flags().IntVar(&limit, "limit", 100, "Maximum snippets to return")
	listCmd.Flags().Int64Var(&project, "project", 0, "Filter by project id")
	listCmd.Flags().StringVar(&lang, "language", "", "Filter by language")

	cmd.AddCommand(addCmd, getCmd, listCmd)
	return cmd
}
