package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"mealplan/internal/domain/entity"
	"mealplan/internal/infra/catalog"
	"mealplan/internal/planner/generator"

	"github.com/pkg/errors"
)

type generateRequest struct {
	profilePath string
	catalogPath string
	date        string
	mode        string
	days        int
	maxPrepTime int
}

func runGenerate(ctx context.Context, req generateRequest, out io.Writer) error {
	mode, err := generator.ParseMode(req.mode)
	if err != nil {
		return err
	}
	profile, err := loadProfile(req.profilePath)
	if err != nil {
		return err
	}
	seed, err := catalog.LoadFile(req.catalogPath)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	gen := generator.New(generator.Config{}, logger)
	opts := generator.Options{
		Date:        req.date,
		Days:        req.days,
		Mode:        mode,
		MaxPrepTime: req.maxPrepTime,
	}

	var res *generator.GenerationResult
	if req.days > 0 {
		res = gen.GenerateWeek(ctx, profile, seed, opts)
	} else {
		res = gen.Generate(ctx, profile, seed, opts)
	}

	if err := writeJSON(out, res); err != nil {
		return err
	}
	if !res.Success {
		return errors.Wrap(res.Err, "generation failed")
	}

	return nil
}

// loadProfile reads a profile document in the API's JSON shape.
func loadProfile(path string) (*entity.UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read profile %s", path)
	}

	var profile entity.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, errors.Wrapf(err, "decode profile %s", path)
	}

	return &profile, nil
}

func writeJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	return errors.Wrap(encoder.Encode(v), "write output")
}
