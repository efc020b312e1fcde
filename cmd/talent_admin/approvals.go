package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-console/internal/approvals"
	"github.com/jonathan/talent-console/internal/remote"
)

var approvalsCmd = &cobra.Command{
	Use:   "approvals",
	Short: "Moderate vendor-submitted skills",
}

var approvalsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List vendor skill submissions",
	RunE:  runApprovalsList,
}

var approvalsApproveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Approve a pending submission",
	Args:  cobra.ExactArgs(1),
	RunE:  runApprovalsApprove,
}

var approvalsRejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Reject a pending submission with a reason",
	Args:  cobra.ExactArgs(1),
	RunE:  runApprovalsReject,
}

var approvalsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a submission outright",
	Args:  cobra.ExactArgs(1),
	RunE:  runApprovalsRemove,
}

var (
	approvalsPage   int
	approvalsStatus string
	rejectReason    string
)

func init() {
	approvalsListCmd.Flags().IntVar(&approvalsPage, "page", 1, "Page number to fetch")
	approvalsListCmd.Flags().StringVar(&approvalsStatus, "status", "", "Filter by status: pending|approved|rejected")
	approvalsRejectCmd.Flags().StringVar(&rejectReason, "reason", "", "Reason shown to the vendor (required)")
	_ = approvalsRejectCmd.MarkFlagRequired("reason")

	approvalsCmd.AddCommand(approvalsListCmd, approvalsApproveCmd, approvalsRejectCmd, approvalsRemoveCmd)
	rootCmd.AddCommand(approvalsCmd)
}

func newApprovalsService(ctx context.Context, page int, status string) (*approvals.Service, error) {
	cfg, err := loadSettings()
	if err != nil {
		return nil, err
	}
	client, err := newClient(cfg)
	if err != nil {
		return nil, err
	}
	svc := approvals.NewService(client)
	params := remote.ListParams{Page: page, Limit: cfg.PageSize, Status: status}
	if err := svc.LoadPage(ctx, params); err != nil {
		return nil, fmt.Errorf("failed to load vendor skills: %w", err)
	}
	return svc, nil
}

func runApprovalsList(_ *cobra.Command, _ []string) error {
	svc, err := newApprovalsService(context.Background(), approvalsPage, approvalsStatus)
	if err != nil {
		return err
	}

	printer().PrintVendorSkills(svc.Cache().Items(), svc.Cache().Pagination())
	return nil
}

func runApprovalsApprove(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	svc, err := newApprovalsService(ctx, 1, "")
	if err != nil {
		return err
	}

	vs, err := svc.Approve(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to approve submission: %w", err)
	}

	fmt.Printf("Approved %s (%s)\n", vs.SkillName, vs.ID)
	return nil
}

func runApprovalsReject(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	svc, err := newApprovalsService(ctx, 1, "")
	if err != nil {
		return err
	}

	vs, err := svc.Reject(ctx, args[0], rejectReason)
	if err != nil {
		return fmt.Errorf("failed to reject submission: %w", err)
	}

	fmt.Printf("Rejected %s (%s): %s\n", vs.SkillName, vs.ID, rejectReason)
	return nil
}

func runApprovalsRemove(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	svc, err := newApprovalsService(ctx, 1, "")
	if err != nil {
		return err
	}

	if _, err := svc.Remove(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to remove submission: %w", err)
	}

	fmt.Printf("Removed submission %s\n", args[0])
	return nil
}
