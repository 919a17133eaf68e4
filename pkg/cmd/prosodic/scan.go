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
package prosodic

import (
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alusilo/go-prosodic/pkg/constraint"
	"github.com/alusilo/go-prosodic/pkg/meter"
	"github.com/alusilo/go-prosodic/pkg/prosodyerr"
	"github.com/alusilo/go-prosodic/pkg/report"
	"github.com/alusilo/go-prosodic/pkg/search"
)

// scanCmd is this module's counterpart to the teacher's executeCmd/checkCmd:
// it loads an input file and a configuration file, drives the search
// engine, and reports errors through os.Exit rather than panicking.
var scanCmd = &cobra.Command{
	Use:   "scan [flags] matrix.json meter.json",
	Short: "Scan a word form matrix against a meter configuration.",
	Long: `Scan a word form matrix (a JSON list of syllables) against a meter
configuration (JSON or YAML), printing the ranked scansions to stdout.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") || GetFlag(cmd, "debug") {
			log.SetLevel(log.DebugLevel)
		}

		matrix, err := meter.LoadMatrix(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		cfg, err := meter.LoadConfig(args[1])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		engine, err := search.NewEngine(cfg, constraint.DefaultRegistry())
		if err != nil {
			reportFatal(err)
		}

		result, err := engine.ScanLine(matrix)
		if err != nil {
			reportFatal(err)
		}

		view := report.NewLineView(result, cfg.SecondaryStressMode)

		if GetFlag(cmd, "json") {
			printJSON(view)
			return
		}

		report.RenderLineView(os.Stdout, view)
	},
}

// reportFatal distinguishes the two programmer-error classes spec.md §7
// names (MeterMisconfigured, ConstraintArityMismatch) from an
// UnparseableLine outcome, which is never an error at all and so never
// reaches here — matching the teacher's own fatal/non-fatal split in
// checkCmd's Run.
func reportFatal(err error) {
	switch err.(type) {
	case *prosodyerr.MeterMisconfigured:
		fmt.Println(err)
		os.Exit(3)
	case *prosodyerr.ConstraintArityMismatch:
		fmt.Println(err)
		os.Exit(4)
	default:
		fmt.Println(err)
		os.Exit(1)
	}
}

func printJSON(view report.LineView) {
	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Println(string(data))
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().Bool("json", false, "print the scan result as JSON instead of a table")
}
