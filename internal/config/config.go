// SPDX-License-Identifier: MIT

// Package config loads tpsgam problem files.
//
// A problem file is YAML: observation vectors, dense design rows, the
// penalty as coordinate entries, block orders, the reporting design and
// optional start values, prior scales and simulation settings. Structural
// checks use validator struct tags; model.New performs the semantic ones.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/tpsgam/model"
	"gopkg.in/yaml.v3"
)

// ErrInvalidProblem indicates a problem file that failed decoding or validation.
var ErrInvalidProblem = errors.New("config: invalid problem")

// Entry is one penalty coordinate.
type Entry struct {
	Row   int     `yaml:"row" validate:"gte=0"`
	Col   int     `yaml:"col" validate:"gte=0"`
	Value float64 `yaml:"value"`
}

// Penalty is the penalty matrix in coordinate form.
type Penalty struct {
	Order   int     `yaml:"order" validate:"gt=0"`
	Entries []Entry `yaml:"entries" validate:"dive"`
}

// Problem is the decoded problem file.
type Problem struct {
	Family       string       `yaml:"family" validate:"required,family"`
	Response     []float64    `yaml:"response" validate:"required,min=1"`
	Period       []int        `yaml:"period" validate:"required,dive,gte=0"`
	Subperiod    []int        `yaml:"subperiod" validate:"required,dive,gte=0"`
	Destination  []int        `yaml:"destination" validate:"required,dive,gte=0"`
	Depth        []float64    `yaml:"depth" validate:"required"`
	Levels       model.Levels `yaml:"levels"`
	Design       [][]float64  `yaml:"design" validate:"required,min=1,dive,min=1"`
	Penalty      Penalty      `yaml:"penalty"`
	BlockDims    []int        `yaml:"block_dims" validate:"required,min=1,dive,gt=0"`
	ReportDesign [][]float64  `yaml:"report_design" validate:"required,min=1,dive,min=1"`

	Params     *model.Params      `yaml:"params,omitempty"`
	Priors     *model.PriorScales `yaml:"priors,omitempty"`
	Simulation string             `yaml:"simulation,omitempty" validate:"omitempty,oneof=match-family gamma-legacy"`
	Seed       uint64             `yaml:"seed,omitempty"`
	Replicates int                `yaml:"replicates,omitempty" validate:"gte=0"`
}

// problemValidate is the shared validator; "family" accepts any name or
// numeric selector understood by model.ParseFamilyName.
var problemValidate *validator.Validate

func init() {
	problemValidate = validator.New()
	_ = problemValidate.RegisterValidation("family", func(fl validator.FieldLevel) bool {
		_, err := model.ParseFamilyName(fl.Field().String())
		return err == nil
	})
}

// Load reads and validates the problem file at path.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read the problem file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML problem.
func Parse(data []byte) (*Problem, error) {
	var p Problem
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidProblem, err)
	}
	if err := problemValidate.Struct(&p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}

	return &p, nil
}
