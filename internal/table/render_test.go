package table

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/szabop/md-table-tools/internal/textblock"
	"github.com/szabop/md-table-tools/internal/textutil"
)

func TestDetermineColumnAlignments(t *testing.T) {
	cells := []string{":---", ":---:", "---:", "---"}
	want := []textblock.Alignment{
		textblock.AlignLeft,
		textblock.AlignCenter,
		textblock.AlignRight,
		textblock.AlignNone,
	}
	if diff := cmp.Diff(want, DetermineColumnAlignments(cells)); diff != "" {
		t.Fatalf("alignments mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderEndToEnd(t *testing.T) {
	var r Renderer
	got := r.Render(
		[]string{"A", "BB"},
		[][]string{{"x", "yy"}},
		DetermineColumnAlignments([]string{":---", "---:"}),
	).Lines()

	want := []string{
		"| A   |  BB |",
		"|:----|----:|",
		"| x   |  yy |",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rendered table mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderDelimiterDecoration(t *testing.T) {
	tests := []struct {
		align textblock.Alignment
		want  string
	}{
		{textblock.AlignLeft, "|:----|"},
		{textblock.AlignCenter, "|:---:|"},
		{textblock.AlignRight, "|----:|"},
		{textblock.AlignNone, "|-----|"},
	}
	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			var r Renderer
			got := r.Render([]string{"abc"}, nil, []textblock.Alignment{tt.align}).Lines()
			if got[1] != tt.want {
				t.Fatalf("delimiter line=%q want %q", got[1], tt.want)
			}
		})
	}
}

func TestRenderMinimumColumnWidth(t *testing.T) {
	var r Renderer
	got := r.Render([]string{""}, nil, []textblock.Alignment{textblock.AlignNone}).Lines()
	want := []string{
		"|     |",
		"|-----|",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("empty column mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderRaggedRow(t *testing.T) {
	var r Renderer
	got := r.Render(
		[]string{"A", "B", "C"},
		[][]string{{"1", "2"}},
		DetermineColumnAlignments([]string{"---", "---", "---"}),
	).Lines()

	want := []string{
		"| A   | B   | C   |",
		"|-----|-----|-----|",
		"| 1   | 2   |     |",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ragged table mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderCenterAlignment(t *testing.T) {
	var r Renderer
	got := r.Render(
		[]string{"title"},
		[][]string{{"ab"}, {"abcde"}},
		[]textblock.Alignment{textblock.AlignCenter},
	).Lines()

	want := []string{
		"| title |",
		"|:-----:|",
		"|  ab   |",
		"| abcde |",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("centered table mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderWideCharacters(t *testing.T) {
	var r Renderer
	got := r.Render(
		[]string{"名前", "n"},
		[][]string{{"箱", "x"}},
		DetermineColumnAlignments([]string{"---", "---"}),
	).Lines()

	want := []string{
		"| 名前 | n   |",
		"|------|-----|",
		"| 箱   | x   |",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("wide-rune table mismatch (-want +got):\n%s", diff)
	}
	for i, line := range got {
		if w := textutil.DisplayWidth(line); w != textutil.DisplayWidth(got[0]) {
			t.Fatalf("line %d display width=%d want %d", i, w, textutil.DisplayWidth(got[0]))
		}
	}
}

func TestRenderRowsStayInOrder(t *testing.T) {
	var r Renderer
	rows := [][]string{{"first"}, {"second"}, {"third"}}
	got := r.Render([]string{"h"}, rows, nil).Lines()
	for i, row := range rows {
		line := got[i+2]
		if !strings.Contains(line, row[0]) {
			t.Fatalf("line %d %q does not contain row %q", i+2, line, row[0])
		}
	}
}

func TestRenderTrace(t *testing.T) {
	var traced []string
	r := Renderer{Trace: func(format string, args ...any) {
		traced = append(traced, fmt.Sprintf(format, args...))
	}}
	r.Render(
		[]string{"A", "BB"},
		nil,
		DetermineColumnAlignments([]string{":---", "---:"}),
	)
	want := []string{
		"column 1: align=left width=3",
		"column 2: align=right width=3",
	}
	if diff := cmp.Diff(want, traced); diff != "" {
		t.Fatalf("trace mismatch (-want +got):\n%s", diff)
	}
}

func TestFormat(t *testing.T) {
	src := strings.Join([]string{
		"| Name | Qty | Notes |",
		"|:--|--:|:-:|",
		"| apple |10| fresh `a|b` |",
		"| melon | 2 |",
		"",
	}, "\n")

	var r Renderer
	got, err := r.Format(src)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	want := strings.Join([]string{
		"| Name  | Qty |    Notes    |",
		"|:------|----:|:-----------:|",
		"| apple |  10 | fresh `a|b` |",
		"| melon |   2 |             |",
		"",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("formatted table mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatIdempotent(t *testing.T) {
	src := strings.Join([]string{
		"| Name | Qty | Notes |",
		"|:--|--:|:-:|",
		"| apple |10| fresh |",
		"| melon | 2 |",
	}, "\n")

	var r Renderer
	once, err := r.Format(src)
	if err != nil {
		t.Fatalf("first Format: %v", err)
	}
	twice, err := r.Format(once)
	if err != nil {
		t.Fatalf("second Format: %v", err)
	}
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("second pass changed the output (-first +second):\n%s", diff)
	}
}

func TestFormatEscapedPipeRoundTrip(t *testing.T) {
	src := strings.Join([]string{
		"| h1 | h2 |",
		"| --- | --- |",
		`| a\|b | c |`,
		"",
	}, "\n")

	var r Renderer
	once, err := r.Format(src)
	if err != nil {
		t.Fatalf("first Format: %v", err)
	}
	want := strings.Join([]string{
		"| h1   | h2  |",
		"|------|-----|",
		`| a\|b | c   |`,
		"",
	}, "\n")
	if diff := cmp.Diff(want, once); diff != "" {
		t.Fatalf("formatted table mismatch (-want +got):\n%s", diff)
	}

	twice, err := r.Format(once)
	if err != nil {
		t.Fatalf("second Format: %v", err)
	}
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("escaped pipe did not round-trip (-first +second):\n%s", diff)
	}
}

func TestFormatPreservesTrailingNewline(t *testing.T) {
	src := "| a |\n| --- |"
	var r Renderer
	got, err := r.Format(src)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if strings.HasSuffix(got, "\n") {
		t.Fatalf("output gained a trailing newline: %q", got)
	}

	got, err = r.Format(src + "\n")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Fatalf("output lost the trailing newline: %q", got)
	}
}

func TestFormatRejectsNonTable(t *testing.T) {
	var r Renderer
	if _, err := r.Format("just a paragraph\nwith two lines"); err == nil {
		t.Fatalf("Format accepted non-table input")
	}
}
