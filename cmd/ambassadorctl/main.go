package main

import (
	"ambassador-server/internal/bootstrap"
	"ambassador-server/internal/config"
	"ambassador-server/internal/observability"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := cobra.Command{
		Use:   "ambassadorctl",
		Short: "operate the ambassador integration and dispatch jobs",
	}
	rootCmd.AddCommand(
		dispatchDueCommand(),
		syncTrackersCommand(),
		adminTokenCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withDependencies runs fn with fully initialized dependencies, cancelling on SIGINT/SIGTERM
func withDependencies(fn func(ctx context.Context, deps *bootstrap.Dependencies) error) error {
	logger := observability.NewLogger()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.Cleanup()

	return fn(ctx, deps)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func dispatchDueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dispatch-due",
		Short: "send notifications for every campaign that is due now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDependencies(func(ctx context.Context, deps *bootstrap.Dependencies) error {
				summary, err := deps.DispatchProcessor.ProcessDue(ctx, time.Now())
				if err != nil {
					return err
				}
				return printJSON(summary)
			})
		},
	}
}

func syncTrackersCommand() *cobra.Command {
	var organization string
	cmd := &cobra.Command{
		Use:   "sync-trackers",
		Short: "refresh ticket statistics for one or every connected organization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var organizationID uuid.UUID
			if organization != "" {
				id, err := uuid.Parse(organization)
				if err != nil {
					return fmt.Errorf("invalid --organization: %w", err)
				}
				organizationID = id
			}

			return withDependencies(func(ctx context.Context, deps *bootstrap.Dependencies) error {
				if organizationID == uuid.Nil {
					result, err := deps.TrackerProcessor.SyncAllOrganizations(ctx)
					if err != nil {
						return err
					}
					return printJSON(result)
				}
				result, err := deps.TrackerProcessor.SyncStats(ctx, organizationID)
				if err != nil {
					return err
				}
				return printJSON(result)
			})
		},
	}
	cmd.Flags().StringVar(&organization, "organization", "", "organization id; all connected organizations when empty")
	return cmd
}

func adminTokenCommand() *cobra.Command {
	var organization, subject string
	cmd := &cobra.Command{
		Use:   "admin-token",
		Short: "mint an admin token for one organization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			organizationID, err := uuid.Parse(organization)
			if err != nil {
				return fmt.Errorf("invalid --organization: %w", err)
			}

			return withDependencies(func(ctx context.Context, deps *bootstrap.Dependencies) error {
				token, err := deps.AuthProcessor.GenerateAdminToken(ctx, subject, organizationID)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(os.Stdout, token)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&organization, "organization", "", "organization id the token is valid for")
	cmd.Flags().StringVar(&subject, "subject", "ambassadorctl", "token subject")
	_ = cmd.MarkFlagRequired("organization")
	return cmd
}
