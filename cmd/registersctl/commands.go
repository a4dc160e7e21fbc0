package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type openFunc func(ctx context.Context) (jobs, error)

func newRootCmd(open openFunc) *cobra.Command {
	root := &cobra.Command{
		Use:          "registersctl",
		Short:        "Run registers maintenance jobs",
		SilenceUsage: true,
	}

	root.AddCommand(generateRemindersCmd(open))
	root.AddCommand(backupCmd(open))
	root.AddCommand(migrateCmd(open))
	root.AddCommand(forgetUserCmd(open))

	return root
}

func generateRemindersCmd(open openFunc) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "generate-reminders",
		Short: "Create reminders for schedule entries due soon",
		Long: `Create one reminder per schedule entry due between today and today+days.
Entries that already have a reminder are skipped, so reruns are safe.

Examples:
  registersctl generate-reminders
  registersctl generate-reminders --days 14`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer j.Close()

			if !cmd.Flags().Changed("days") {
				days = j.DefaultHorizon()
			}

			created, err := j.GenerateReminders(cmd.Context(), days)
			if err != nil {
				return err
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Generated %d reminders.\n", created)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "how many days ahead to look (default from config)")
	return cmd
}

func backupCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Archive uploaded documents and rotate old archives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer j.Close()

			res, err := j.Backup(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			color.New(color.FgGreen).Fprintf(out, "Created backup at %s\n", res.Path)
			if res.Skipped > 0 {
				color.New(color.FgYellow).Fprintf(out, "Skipped %d missing files.\n", res.Skipped)
			}
			for _, p := range res.Removed {
				fmt.Fprintf(out, "Removed old backup %s\n", p)
			}
			return nil
		},
	}
}

func migrateCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer j.Close()

			if err := j.Migrate(cmd.Context()); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "Migrations applied.")
			return nil
		},
	}
}

func forgetUserCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "forget-user <user-id>",
		Short: "Detach a removed user from activity logs and uploads",
		Long: `Null out every reference to a user deleted from the identity provider.
Activity log rows and document versions are kept without an owner.

Example:
  registersctl forget-user 3f2c8a4e-5b1d-4c6e-9f0a-7d8e9b1c2a3f`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid user id %q: %w", args[0], err)
			}

			j, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer j.Close()

			res, err := j.ForgetUser(cmd.Context(), userID)
			if err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(),
				"Cleared user from %d activity logs and %d document versions.\n",
				res.ActivityLogs, res.DocumentVersions)
			return nil
		},
	}
}
