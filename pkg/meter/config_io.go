// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package meter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alusilo/go-prosodic/pkg/syllable"
	"gopkg.in/yaml.v3"
)

// configDoc is the on-disk shape of a Config, in both its JSON and YAML
// forms. Grounded on the teacher's pkg/trace/json reader, which likewise
// decodes into an intermediate struct before constructing the in-memory
// type (see DESIGN.md) — stdlib encoding/json is used for JSON, since that
// is what the teacher itself reaches for; gopkg.in/yaml.v3 covers the
// human-editable form, which has no teacher equivalent to ground on.
type configDoc struct {
	Shapes                  []string           `json:"shapes"                    yaml:"shapes"`
	MaxW                    int                `json:"max_w"                     yaml:"max_w"`
	MaxS                    int                `json:"max_s"                     yaml:"max_s"`
	ConstraintNames         []string           `json:"constraints"               yaml:"constraints"`
	Weights                 map[string]float64 `json:"constraint_weights"        yaml:"constraint_weights"`
	CategoricalConstraints  []string           `json:"categorical_constraint_names" yaml:"categorical_constraint_names"`
	SecondaryStressMode     string             `json:"secondary_stress_mode"     yaml:"secondary_stress_mode"`
	PreferRising            *bool              `json:"prefer_rising"             yaml:"prefer_rising"`
	ResolveOptionality      *bool              `json:"resolve_optionality"       yaml:"resolve_optionality"`
	MinBoundingSlots        int                `json:"min_bounding_slots"        yaml:"min_bounding_slots"`
	MaxPartials             int                `json:"max_partials"              yaml:"max_partials"`
}

// LoadConfig reads a meter configuration from a JSON (.json) or YAML
// (.yaml/.yml) file, inferred by extension. It does not call Validate;
// callers should do so (or rely on search.NewEngine, which validates as
// part of binding a Config to a constraint.Registry).
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading meter config %s: %w", path, err)
	}

	var doc configDoc

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing meter config %s as JSON: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing meter config %s as YAML: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("meter config %s has unrecognized extension %q (want .json, .yaml or .yml)", path, ext)
	}

	return docToConfig(doc), nil
}

func docToConfig(doc configDoc) *Config {
	cfg := DefaultConfig()

	cfg.Shapes = make([]Shape, len(doc.Shapes))
	for i, s := range doc.Shapes {
		cfg.Shapes[i] = Shape(s)
	}

	if doc.MaxW > 0 {
		cfg.MaxW = doc.MaxW
	}

	if doc.MaxS > 0 {
		cfg.MaxS = doc.MaxS
	}

	cfg.ConstraintNames = doc.ConstraintNames
	cfg.CategoricalConstraints = doc.CategoricalConstraints
	cfg.MinBoundingSlots = doc.MinBoundingSlots
	cfg.MaxPartials = doc.MaxPartials

	if doc.Weights != nil {
		cfg.Weights = doc.Weights
	}

	if doc.PreferRising != nil {
		cfg.PreferRising = *doc.PreferRising
	}

	if doc.ResolveOptionality != nil {
		cfg.ResolveOptionality = *doc.ResolveOptionality
	}

	switch doc.SecondaryStressMode {
	case "unstressed":
		cfg.SecondaryStressMode = syllable.SecondaryAsUnstressed
	case "distinct":
		cfg.SecondaryStressMode = syllable.SecondaryAsDistinct
	default:
		cfg.SecondaryStressMode = syllable.SecondaryAsStressed
	}

	return cfg
}
