package validation

import (
	"fmt"
	"strings"

	"mealplan/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ErrInvalidCatalog is returned for catalogs with missing ids or names, negative nutrition or
// duplicate ids.
var ErrInvalidCatalog = errors.New("invalid catalog")

var catalogValidator = validator.New(validator.WithRequiredStructEnabled())

// ValidateCatalog checks every recipe and food and reports all problems in one error.
// Recipe ids and food ids must each be unique.
func ValidateCatalog(c *entity.Catalog) error {
	if c == nil {
		return nil
	}

	var problems []string
	for i := range c.Recipes {
		problems = append(problems, itemProblems("recipe", i, c.Recipes[i].ID, &c.Recipes[i])...)
	}
	for i := range c.Foods {
		problems = append(problems, itemProblems("food", i, c.Foods[i].ID, &c.Foods[i])...)
	}
	problems = append(problems, duplicateIDs("recipe", len(c.Recipes), func(i int) string { return c.Recipes[i].ID })...)
	problems = append(problems, duplicateIDs("food", len(c.Foods), func(i int) string { return c.Foods[i].ID })...)

	if len(problems) > 0 {
		return errors.Wrap(ErrInvalidCatalog, strings.Join(problems, "; "))
	}

	return nil
}

func itemProblems(kind string, index int, id string, item any) []string {
	err := catalogValidator.Struct(item)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{fmt.Sprintf("%s %d: %v", kind, index, err)}
	}

	label := fmt.Sprintf("%s %d", kind, index)
	if id != "" {
		label = fmt.Sprintf("%s %q", kind, id)
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s: %s fails %s", label, fe.Field(), describeTag(fe)))
	}

	return problems
}

func describeTag(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}

	return fe.Tag() + "=" + fe.Param()
}

func duplicateIDs(kind string, n int, idAt func(int) string) []string {
	seen := make(map[string]bool, n)
	var problems []string
	for i := range n {
		id := idAt(i)
		if id == "" {
			continue
		}
		if seen[id] {
			problems = append(problems, fmt.Sprintf("duplicate %s id %q", kind, id))
		}
		seen[id] = true
	}

	return problems
}
