package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - generate: Generate a daily or week plan from a profile and a catalog seed
// - targets:  Print the nutrition targets of a profile
// - validate: Validate a profile and a catalog seed
// - candidates: Rank the catalog items eligible for one meal slot
// - seed:     Import a catalog seed into the configured database

func main() {
	// Subcommand definitions
	generateCmd := flag.NewFlagSet("generate", flag.ExitOnError)
	targetsCmd := flag.NewFlagSet("targets", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	candidatesCmd := flag.NewFlagSet("candidates", flag.ExitOnError)

	// generate parameters
	generateProfile := generateCmd.String("profile", "", "Profile JSON file")
	generateCatalog := generateCmd.String("catalog", "./data/catalog.yaml", "Catalog seed file")
	generateDate := generateCmd.String("date", "", "Plan date (YYYY-MM-DD), today when empty")
	generateMode := generateCmd.String("mode", "", "Generation mode (speed, balanced, quality)")
	generateDays := generateCmd.Int("days", 0, "Generate a week plan of this many days")
	generateMaxPrep := generateCmd.Int("max-prep", 0, "Maximum recipe prep plus cook time in minutes")

	// targets parameters
	targetsProfile := targetsCmd.String("profile", "", "Profile JSON file")
	targetsDate := targetsCmd.String("date", "", "Target date (YYYY-MM-DD), today when empty")

	// validate parameters
	validateProfile := validateCmd.String("profile", "", "Profile JSON file")
	validateCatalog := validateCmd.String("catalog", "", "Catalog seed file")

	// seed parameters
	seedCatalog := seedCmd.String("catalog", "", "Catalog seed file, catalog.seedPath when empty")

	// candidates parameters
	candidatesProfile := candidatesCmd.String("profile", "", "Profile JSON file")
	candidatesCatalog := candidatesCmd.String("catalog", "./data/catalog.yaml", "Catalog seed file")
	candidatesDate := candidatesCmd.String("date", "", "Plan date (YYYY-MM-DD), today when empty")
	candidatesSlot := candidatesCmd.String("slot", "", "Meal type or snack position, e.g. Breakfast or \"After Dinner\"")
	candidatesLimit := candidatesCmd.Int("limit", 10, "Maximum number of ranked items, all when 0")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := plangenFlags{
		Generate: generateFlags{
			cmd:     generateCmd,
			profile: generateProfile,
			catalog: generateCatalog,
			date:    generateDate,
			mode:    generateMode,
			days:    generateDays,
			maxPrep: generateMaxPrep,
		},
		Targets: targetsFlags{
			cmd:     targetsCmd,
			profile: targetsProfile,
			date:    targetsDate,
		},
		Validate: validateFlags{
			cmd:     validateCmd,
			profile: validateProfile,
			catalog: validateCatalog,
		},
		Seed: seedFlags{
			cmd:     seedCmd,
			catalog: seedCatalog,
		},
		Candidates: candidatesFlags{
			cmd:     candidatesCmd,
			profile: candidatesProfile,
			catalog: candidatesCatalog,
			date:    candidatesDate,
			slot:    candidatesSlot,
			limit:   candidatesLimit,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type plangenFlags struct {
	Generate   generateFlags
	Targets    targetsFlags
	Validate   validateFlags
	Seed       seedFlags
	Candidates candidatesFlags
}

type generateFlags struct {
	cmd     *flag.FlagSet
	profile *string
	catalog *string
	date    *string
	mode    *string
	days    *int
	maxPrep *int
}

type targetsFlags struct {
	cmd     *flag.FlagSet
	profile *string
	date    *string
}

type validateFlags struct {
	cmd     *flag.FlagSet
	profile *string
	catalog *string
}

type seedFlags struct {
	cmd     *flag.FlagSet
	catalog *string
}

type candidatesFlags struct {
	cmd     *flag.FlagSet
	profile *string
	catalog *string
	date    *string
	slot    *string
	limit   *int
}

func runSubcommand(ctx context.Context, flags *plangenFlags) error {
	switch os.Args[1] {
	case "generate":
		return handleGenerate(ctx, flags)
	case "targets":
		return handleTargets(flags)
	case "validate":
		return handleValidate(flags)
	case "seed":
		return handleSeed(ctx, flags)
	case "candidates":
		return handleCandidates(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleGenerate(ctx context.Context, flags *plangenFlags) error {
	if err := flags.Generate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse generate flags")
	}

	if *flags.Generate.profile == "" {
		return errors.New("--profile flag is required for generate command")
	}

	return runGenerate(ctx, generateRequest{
		profilePath: *flags.Generate.profile,
		catalogPath: *flags.Generate.catalog,
		date:        *flags.Generate.date,
		mode:        *flags.Generate.mode,
		days:        *flags.Generate.days,
		maxPrepTime: *flags.Generate.maxPrep,
	}, os.Stdout)
}

func handleTargets(flags *plangenFlags) error {
	if err := flags.Targets.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse targets flags")
	}

	if *flags.Targets.profile == "" {
		return errors.New("--profile flag is required for targets command")
	}

	return runTargets(*flags.Targets.profile, *flags.Targets.date, os.Stdout)
}

func handleValidate(flags *plangenFlags) error {
	if err := flags.Validate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse validate flags")
	}

	if *flags.Validate.profile == "" && *flags.Validate.catalog == "" {
		return errors.New("validate needs --profile, --catalog or both")
	}

	return runValidate(*flags.Validate.profile, *flags.Validate.catalog, os.Stdout)
}

func handleSeed(ctx context.Context, flags *plangenFlags) error {
	if err := flags.Seed.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse seed flags")
	}

	return runSeed(ctx, *flags.Seed.catalog, os.Stdout)
}

func handleCandidates(flags *plangenFlags) error {
	if err := flags.Candidates.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse candidates flags")
	}

	if *flags.Candidates.profile == "" || *flags.Candidates.slot == "" {
		return errors.New("--profile and --slot flags are required for candidates command")
	}

	return runCandidates(candidatesRequest{
		profilePath: *flags.Candidates.profile,
		catalogPath: *flags.Candidates.catalog,
		date:        *flags.Candidates.date,
		slot:        *flags.Candidates.slot,
		limit:       *flags.Candidates.limit,
	}, os.Stdout)
}

func printUsage() {
	fmt.Println("Usage: plangen <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  generate    Generate a meal plan from a profile and a catalog seed")
	fmt.Println("  targets     Print the nutrition targets of a profile")
	fmt.Println("  validate    Validate a profile and a catalog seed")
	fmt.Println("  seed        Import a catalog seed into the configured database")
	fmt.Println("  candidates  Rank the catalog items eligible for one meal slot")
	fmt.Println("")
	fmt.Println("Use 'plangen <command> -h' for more information about a command.")
}
