package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-console/internal/remote"
	"github.com/jonathan/talent-console/internal/skills"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Manage the skill reference list",
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills",
	RunE:  runSkillsList,
}

var skillsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Add a skill to the reference list",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillsCreate,
}

var skillsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Rename or recategorize a skill",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillsUpdate,
}

var skillsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a skill from the reference list",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillsDelete,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage the category reference list",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE:  runCategoriesList,
}

var categoriesCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Add a category to the reference list",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesCreate,
}

var (
	skillCategory    string
	skillDescription string
	skillSearch      string

	categoryDescription string
)

func init() {
	skillsListCmd.Flags().StringVar(&skillSearch, "search", "", "Case-insensitive name filter applied locally")
	for _, cmd := range []*cobra.Command{skillsCreateCmd, skillsUpdateCmd} {
		cmd.Flags().StringVar(&skillCategory, "category", "", "Category the skill belongs to")
		cmd.Flags().StringVar(&skillDescription, "description", "", "Skill description")
	}
	categoriesCreateCmd.Flags().StringVar(&categoryDescription, "description", "", "Category description")

	skillsCmd.AddCommand(skillsListCmd, skillsCreateCmd, skillsUpdateCmd, skillsDeleteCmd)
	categoriesCmd.AddCommand(categoriesListCmd, categoriesCreateCmd)
	rootCmd.AddCommand(skillsCmd, categoriesCmd)
}

func newSkillsService(ctx context.Context) (*skills.Service, error) {
	cfg, err := loadSettings()
	if err != nil {
		return nil, err
	}
	client, err := newClient(cfg)
	if err != nil {
		return nil, err
	}
	svc := skills.NewService(client)
	if err := svc.LoadSkills(ctx); err != nil {
		return nil, fmt.Errorf("failed to load skills: %w", err)
	}
	if err := svc.LoadCategories(ctx); err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return svc, nil
}

func runSkillsList(_ *cobra.Command, _ []string) error {
	svc, err := newSkillsService(context.Background())
	if err != nil {
		return err
	}

	items := svc.Skills().Items()
	if skillSearch != "" {
		items = svc.SearchSkills(skillSearch)
	}
	printer().PrintSkills(items, svc.Skills().Pagination())
	return nil
}

func runSkillsCreate(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	svc, err := newSkillsService(ctx)
	if err != nil {
		return err
	}

	skill, err := svc.CreateSkill(ctx, remote.SkillPayload{
		Name:        args[0],
		Category:    skillCategory,
		Description: skillDescription,
	})
	if err != nil {
		return fmt.Errorf("failed to create skill: %w", err)
	}

	fmt.Printf("Created skill %s (%s)\n", skill.Name, skill.ID)
	return nil
}

func runSkillsUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	svc, err := newSkillsService(ctx)
	if err != nil {
		return err
	}

	existing, ok := svc.Skills().Get(args[0])
	if !ok {
		return fmt.Errorf("skill %s is not on the current page", args[0])
	}

	payload := remote.SkillPayload{
		Name:        existing.Name,
		Category:    existing.Category,
		Description: existing.Description,
	}
	if cmd.Flags().Changed("category") {
		payload.Category = skillCategory
	}
	if cmd.Flags().Changed("description") {
		payload.Description = skillDescription
	}

	skill, err := svc.UpdateSkill(ctx, args[0], payload)
	if err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
	}

	fmt.Printf("Updated skill %s\n", skill.Name)
	return nil
}

func runSkillsDelete(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	svc, err := newSkillsService(ctx)
	if err != nil {
		return err
	}

	if err := svc.DeleteSkill(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}

	fmt.Printf("Deleted skill %s\n", args[0])
	return nil
}

func runCategoriesList(_ *cobra.Command, _ []string) error {
	svc, err := newSkillsService(context.Background())
	if err != nil {
		return err
	}

	printer().PrintCategories(svc.Categories().Items(), svc.Categories().Pagination())
	return nil
}

func runCategoriesCreate(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	svc, err := newSkillsService(ctx)
	if err != nil {
		return err
	}

	category, err := svc.CreateCategory(ctx, remote.CategoryPayload{
		Name:        args[0],
		Description: categoryDescription,
	})
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	fmt.Printf("Created category %s (%s)\n", category.Name, category.ID)
	return nil
}
