// Package main user commands.
package main

import (
	"github.com/spf13/cobra"

	"blackbox/client"
)

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User commands",
	}

	// blackbox user create <username>
	createCmd := &cobra.Command{
		Use:   "create [username]",
		Short: "Register a user",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			user, err := apiClient.CreateUser(cmd.Context(), args[0])
			exitOnError(err)
			success("User created: id=%d username=%s", user.ID, user.Username)
		},
	}

	// blackbox user get <id>
	getCmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			user, err := apiClient.GetUser(cmd.Context(), parseID(args[0]))
			exitOnError(err)
			printJSON(user)
		},
	}

	// blackbox user list
	var skip, limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Run: func(cmd *cobra.Command, args []string) {
			users, err := apiClient.ListUsers(cmd.Context(), client.Page{Skip: skip, Limit: limit})
			exitOnError(err)
			printJSON(users)
		},
	}
	listCmd.Flags().IntVar(&skip, "skip", 0, "Number of users to skip")
	listCmd.Flags().IntVar(&limit, "limit", 100, "Maximum users to return")

	cmd.AddCommand(createCmd, getCmd, listCmd)
	return cmd
}
