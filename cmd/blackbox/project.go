// Package main project commands.
package main

import (
	"github.com/spf13/cobra"

	"blackbox/client"
)

func projectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project commands",
	}

	// blackbox project create <name>
	var description string
	var ownerID int64
	createCmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			project, err := apiClient.CreateProject(cmd.Context(), client.ProjectCreate{
				Name:        args[0],
				Description: strPtr(description),
				OwnerID:     int64Ptr(ownerID),
			})
			exitOnError(err)
			success("Project created: id=%d name=%s", project.ID, project.Name)
		},
	}
	createCmd.Flags().StringVar(&description, "description", "", "Project description")
	createCmd.Flags().Int64Var(&ownerID, "owner", 0, "Owning user id")

	// blackbox project get <id>
	getCmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Show a project",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			project, err := apiClient.GetProject(cmd.Context(), parseID(args[0]))
			exitOnError(err)
			printJSON(project)
		},
	}

	// blackbox project list
	var skip, limit int
	var owner int64
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Run: func(cmd *cobra.Command, args []string) {
			projects, err := apiClient.ListProjects(cmd.Context(), int64Ptr(owner), client.Page{Skip: skip, Limit: limit})
			exitOnError(err)
			printJSON(projects)
		},
	}
	listCmd.Flags().IntVar(&skip, "skip", 0, "Number of projects to skip")
	listCmd.Flags().IntVar(&limit, "limit", 100, "Maximum projects to return")
	listCmd.Flags().Int64Var(&owner, "owner", 0, "Filter by owning user id")

	cmd.AddCommand(createCmd, getCmd, listCmd)
	return cmd
}
