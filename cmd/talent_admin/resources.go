package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-console/internal/config"
	"github.com/jonathan/talent-console/internal/remote"
	"github.com/jonathan/talent-console/internal/resources"
	"github.com/jonathan/talent-console/internal/submission"
	"github.com/jonathan/talent-console/internal/types"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "Manage staffing resource records",
}

var resourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List resources, one backend page at a time",
	RunE:  runResourcesList,
}

var resourcesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single resource",
	Args:  cobra.ExactArgs(1),
	RunE:  runResourcesGet,
}

var resourcesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a resource, optionally attaching a file",
	RunE:  runResourcesCreate,
}

var resourcesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a resource; only the flags you pass change",
	Args:  cobra.ExactArgs(1),
	RunE:  runResourcesUpdate,
}

var resourcesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a resource",
	Args:  cobra.ExactArgs(1),
	RunE:  runResourcesDelete,
}

var (
	resListPage   int
	resListStatus string
	resListSearch string

	resName        string
	resCategory    string
	resSkills      []string
	resYears       int
	resLevel       string
	resCity        string
	resState       string
	resCountry     string
	resRemote      bool
	resStatus      string
	resHours       int
	resRate        float64
	resCurrency    string
	resDescription string
	resAttach      string
	resRemoveFile  bool
)

func init() {
	resourcesListCmd.Flags().IntVar(&resListPage, "page", 1, "Page number to fetch")
	resourcesListCmd.Flags().StringVar(&resListStatus, "status", "", "Filter by availability status")
	resourcesListCmd.Flags().StringVar(&resListSearch, "search", "", "Free-text search filter")

	for _, cmd := range []*cobra.Command{resourcesCreateCmd, resourcesUpdateCmd} {
		cmd.Flags().StringVar(&resName, "name", "", "Resource name")
		cmd.Flags().StringVar(&resCategory, "category", "", "Category id")
		cmd.Flags().StringSliceVar(&resSkills, "skill", nil, "Skill id (repeatable)")
		cmd.Flags().IntVar(&resYears, "years", 0, "Years of experience")
		cmd.Flags().StringVar(&resLevel, "level", "", "Experience level: junior|intermediate|senior|expert")
		cmd.Flags().StringVar(&resCity, "city", "", "City")
		cmd.Flags().StringVar(&resState, "state", "", "State or region")
		cmd.Flags().StringVar(&resCountry, "country", "", "Country")
		cmd.Flags().BoolVar(&resRemote, "remote", false, "Remote-capable")
		cmd.Flags().StringVar(&resStatus, "status", "", "Availability: available|partially_available|unavailable")
		cmd.Flags().IntVar(&resHours, "hours", 0, "Available hours per week")
		cmd.Flags().Float64Var(&resRate, "rate", 0, "Hourly rate")
		cmd.Flags().StringVar(&resCurrency, "currency", "", "Rate currency (ISO 4217)")
		cmd.Flags().StringVar(&resDescription, "description", "", "Free-form description")
		cmd.Flags().StringVar(&resAttach, "attach", "", "Path to a CV file to upload (.pdf, .doc, .docx)")
	}
	resourcesUpdateCmd.Flags().BoolVar(&resRemoveFile, "remove-attachment", false, "Remove the existing attachment")

	resourcesCmd.AddCommand(resourcesListCmd, resourcesGetCmd, resourcesCreateCmd, resourcesUpdateCmd, resourcesDeleteCmd)
	rootCmd.AddCommand(resourcesCmd)
}

func runResourcesList(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	loader, err := loadReferenceData(ctx, client, cfg)
	if err != nil {
		return err
	}
	svc := resources.NewService(client, loader)

	params := remote.ListParams{
		Page:   resListPage,
		Limit:  cfg.PageSize,
		Status: resListStatus,
		Search: resListSearch,
	}
	if err := svc.LoadPage(ctx, params); err != nil {
		return fmt.Errorf("failed to list resources: %w", err)
	}

	printer().PrintResourceList(svc.Cache().Items(), svc.Cache().Pagination())
	return nil
}

func runResourcesGet(_ *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	res, err := client.GetResource(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch resource: %w", err)
	}

	printer().PrintResource(res)
	return nil
}

func runResourcesCreate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	loader, err := loadReferenceData(ctx, client, cfg)
	if err != nil {
		return err
	}
	svc := resources.NewService(client, loader)

	draft := types.NewResourceDraft()
	if err := applyDraftFlags(cmd, draft); err != nil {
		return err
	}

	return finishSubmit(svc.Submit(ctx, draft, submission.ModeCreate), cfg)
}

func runResourcesUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	loader, err := loadReferenceData(ctx, client, cfg)
	if err != nil {
		return err
	}
	svc := resources.NewService(client, loader)

	// Reference data already loaded, so the draft populates immediately.
	draft, err := svc.NewEditDraft(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch resource for editing: %w", err)
	}

	if err := applyDraftFlags(cmd, draft); err != nil {
		return err
	}
	if resRemoveFile {
		draft.RemoveAttachment()
	}

	return finishSubmit(svc.Submit(ctx, draft, submission.ModeUpdate), cfg)
}

func runResourcesDelete(_ *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	loader, err := loadReferenceData(ctx, client, cfg)
	if err != nil {
		return err
	}
	svc := resources.NewService(client, loader)

	if _, err := svc.Delete(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}

	fmt.Printf("Deleted resource %s\n", args[0])
	return nil
}

// applyDraftFlags copies only the flags the user actually set onto the
// draft, so update sessions keep the fetched values for everything else.
func applyDraftFlags(cmd *cobra.Command, draft *types.ResourceDraft) error {
	flags := cmd.Flags()

	if flags.Changed("name") {
		draft.Name = resName
	}
	if flags.Changed("category") {
		draft.Category = resCategory
	}
	if flags.Changed("skill") {
		draft.Skills = append([]string(nil), resSkills...)
	}
	if flags.Changed("years") {
		draft.Experience.Years = resYears
	}
	if flags.Changed("level") {
		draft.Experience.Level = types.ExperienceLevel(strings.ToLower(resLevel))
	}
	if flags.Changed("city") {
		draft.Location.City = resCity
	}
	if flags.Changed("state") {
		draft.Location.State = resState
	}
	if flags.Changed("country") {
		draft.Location.Country = resCountry
	}
	if flags.Changed("remote") {
		draft.Location.Remote = resRemote
	}
	if flags.Changed("status") {
		draft.Availability.Status = types.AvailabilityStatus(strings.ToLower(resStatus))
	}
	if flags.Changed("hours") {
		draft.Availability.HoursPerWeek = resHours
	}
	if flags.Changed("rate") {
		draft.Rate.Hourly = resRate
	}
	if flags.Changed("currency") {
		draft.Rate.Currency = strings.ToUpper(resCurrency)
	}
	if flags.Changed("description") {
		draft.Description = resDescription
	}

	if resAttach != "" {
		file, err := types.LocalFileFromPath(resAttach)
		if err != nil {
			return fmt.Errorf("cannot attach file: %w", err)
		}
		draft.PendingFile = file
	}

	return nil
}

// finishSubmit renders the outcome and maps failure back to a non-zero
// exit without double-printing the error.
func finishSubmit(outcome submission.Outcome, cfg config.Config) error {
	printer().PrintOutcome(outcome)
	if !outcome.Succeeded() {
		return fmt.Errorf("submission failed during %s", outcome.Stage)
	}
	if cfg.Verbose && outcome.Resource != nil {
		printer().PrintResource(outcome.Resource)
	}
	return nil
}
