package main

import (
	"fmt"
	"io"

	"mealplan/internal/infra/catalog"
	"mealplan/internal/planner/validation"

	"github.com/pkg/errors"
)

func runValidate(profilePath, catalogPath string, out io.Writer) error {
	failed := false

	if profilePath != "" {
		profile, err := loadProfile(profilePath)
		if err != nil {
			return err
		}

		result := validation.ValidateUserProfile(profile)
		fmt.Fprintf(out, "Profile %s: score %d\n", profilePath, result.Score)
		for _, e := range result.Errors {
			fmt.Fprintf(out, "  error: %s\n", e)
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  warning: %s\n", w)
		}
		if err := validation.RequireGenerationPrerequisites(profile); err != nil {
			fmt.Fprintf(out, "  not ready to generate: %v\n", err)
			failed = true
		}
		if !result.IsValid() {
			failed = true
		}
	}

	if catalogPath != "" {
		seed, err := catalog.LoadFile(catalogPath)
		if err != nil {
			fmt.Fprintf(out, "Catalog %s: %v\n", catalogPath, err)
			failed = true
		} else {
			fmt.Fprintf(out, "Catalog %s: %d recipes, %d foods\n", catalogPath, len(seed.Recipes), len(seed.Foods))
		}
	}

	if failed {
		return errors.New("validation failed")
	}
	fmt.Fprintln(out, "Validation passed")

	return nil
}
