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
package report

import (
	"strings"
	"testing"

	"github.com/alusilo/go-prosodic/pkg/syllable"
)

func TestTablePrintIncludesEveryRow(t *testing.T) {
	tbl := NewTable("rank", "meter")
	tbl.AddRow("1", "wsws")
	tbl.AddRow("2", "swsw")

	var sb strings.Builder
	tbl.Print(&sb, 0)

	out := sb.String()
	if !strings.Contains(out, "wsws") || !strings.Contains(out, "swsw") {
		t.Fatalf("expected both rows in output, got:\n%s", out)
	}
}

func TestTableAddRowRejectsWrongColumnCount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected AddRow to panic on a mismatched column count")
		}
	}()

	tbl := NewTable("rank", "meter")
	tbl.AddRow("1")
}

func TestClipAndPadRoundTripWidth(t *testing.T) {
	s := pad(clip("wordbridge", 4), 6)
	if len(s) != 6 {
		t.Fatalf("expected padded width 6, got %d (%q)", len(s), s)
	}

	if s != "word  " {
		t.Fatalf("expected clipped-then-padded %q, got %q", "word  ", s)
	}
}

func TestRenderLineViewUnparseable(t *testing.T) {
	var sb strings.Builder
	RenderLineView(&sb, LineView{Unparseable: true})

	if !strings.Contains(sb.String(), "unparseable") {
		t.Fatalf("expected unparseable marker in output, got %q", sb.String())
	}
}

func TestRenderLineViewParseableLine(t *testing.T) {
	m := matrixOf(t, syllable.Unstressed, syllable.Primary)
	res := scanLine(t, iambicConfig(), m)
	view := NewLineView(res, syllable.SecondaryAsStressed)

	var sb strings.Builder
	RenderLineView(&sb, view)

	if !strings.Contains(sb.String(), "rank") {
		t.Fatalf("expected a header row, got %q", sb.String())
	}
}
