package model

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestNewBBoxNormalizesCorners(t *testing.T) {
	b := NewBBox(100, 700, 50, 650)
	if b.X0 != 50 || b.X1 != 100 {
		t.Errorf("Expected X0=50, X1=100, got X0=%f, X1=%f", b.X0, b.X1)
	}
	if b.Y0 != 650 || b.Y1 != 700 {
		t.Errorf("Expected Y0=650, Y1=700, got Y0=%f, Y1=%f", b.Y0, b.Y1)
	}
}

func TestBBoxDimensions(t *testing.T) {
	b := NewBBox(10, 20, 110, 50)
	if b.Width() != 100 {
		t.Errorf("Expected width 100, got %f", b.Width())
	}
	if b.Height() != 30 {
		t.Errorf("Expected height 30, got %f", b.Height())
	}
	if b.Area() != 3000 {
		t.Errorf("Expected area 3000, got %f", b.Area())
	}

	c := b.Center()
	if c.X != 60 || c.Y != 35 {
		t.Errorf("Expected center (60, 35), got (%f, %f)", c.X, c.Y)
	}
}

func TestBBoxUnion(t *testing.T) {
	a := NewBBox(0, 0, 10, 10)
	b := NewBBox(5, 5, 20, 30)

	u := a.Union(b)
	if u.X0 != 0 || u.Y0 != 0 || u.X1 != 20 || u.Y1 != 30 {
		t.Errorf("Unexpected union: %+v", u)
	}
}

func TestBBoxVerticalOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     BBox
		expected float64
	}{
		{"full overlap", NewBBox(0, 100, 50, 112), NewBBox(60, 100, 90, 112), 12},
		{"partial overlap", NewBBox(0, 100, 50, 112), NewBBox(60, 106, 90, 118), 6},
		{"no overlap", NewBBox(0, 100, 50, 112), NewBBox(60, 200, 90, 212), 0},
		{"touching edges", NewBBox(0, 100, 50, 112), NewBBox(60, 112, 90, 124), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.VerticalOverlap(tt.b); got != tt.expected {
				t.Errorf("VerticalOverlap() = %f, want %f", got, tt.expected)
			}
		})
	}
}

func TestBBoxIsFinite(t *testing.T) {
	if !NewBBox(0, 0, 10, 10).IsFinite() {
		t.Error("Expected finite box to report IsFinite")
	}
	if (BBox{X0: math.NaN()}).IsFinite() {
		t.Error("Expected NaN coordinate to fail IsFinite")
	}
	if (BBox{X1: math.Inf(1)}).IsFinite() {
		t.Error("Expected infinite coordinate to fail IsFinite")
	}
}

func TestPointDistance(t *testing.T) {
	p1 := Point{X: 0, Y: 0}
	p2 := Point{X: 3, Y: 4}
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("Expected distance 5, got %f", d)
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelNone, "None"},
		{LevelTitle, "Title"},
		{LevelH1, "H1"},
		{LevelH2, "H2"},
		{LevelH3, "H3"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestLevelDepth(t *testing.T) {
	tests := []struct {
		level    Level
		expected int
	}{
		{LevelNone, 0},
		{LevelTitle, 0},
		{LevelH1, 1},
		{LevelH2, 2},
		{LevelH3, 3},
	}

	for _, tt := range tests {
		if got := tt.level.Depth(); got != tt.expected {
			t.Errorf("Level(%s).Depth() = %d, want %d", tt.level, got, tt.expected)
		}
	}
}

func TestLevelForDepth(t *testing.T) {
	tests := []struct {
		depth    int
		expected Level
	}{
		{0, LevelNone},
		{1, LevelH1},
		{2, LevelH2},
		{3, LevelH3},
		{4, LevelH3}, // Capped
		{-1, LevelNone},
	}

	for _, tt := range tests {
		if got := LevelForDepth(tt.depth); got != tt.expected {
			t.Errorf("LevelForDepth(%d) = %s, want %s", tt.depth, got, tt.expected)
		}
	}
}

func TestTextLineHelpers(t *testing.T) {
	line := TextLine{Text: "1. Introduction to the topic"}

	if line.WordCount() != 5 {
		t.Errorf("Expected 5 words, got %d", line.WordCount())
	}
	if line.Length() != 28 {
		t.Errorf("Expected length 28, got %d", line.Length())
	}
	if line.IsEmpty() {
		t.Error("Expected non-empty line")
	}

	blank := TextLine{Text: "   "}
	if !blank.IsEmpty() {
		t.Error("Expected whitespace-only line to be empty")
	}
}

func TestHeadingCandidateMarshalJSON(t *testing.T) {
	h := HeadingCandidate{
		Text:       "1. Introduction",
		Level:      LevelH1,
		Page:       1,
		Confidence: 0.9,
	}

	data, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	got := string(data)
	if !strings.Contains(got, `"level":"H1"`) {
		t.Errorf("Expected level field, got %s", got)
	}
	if !strings.Contains(got, `"text":"1. Introduction"`) {
		t.Errorf("Expected text field, got %s", got)
	}
	if !strings.Contains(got, `"page":1`) {
		t.Errorf("Expected page field, got %s", got)
	}
	if strings.Contains(got, "Confidence") || strings.Contains(got, "confidence") {
		t.Errorf("Confidence should not be serialized, got %s", got)
	}
}

func TestOutlineMarshalJSON(t *testing.T) {
	o := Outline{
		Title: "Sample Document",
		Headings: []HeadingCandidate{
			{Text: "1. Introduction", Level: LevelH1, Page: 1},
			{Text: "1.1 Background", Level: LevelH2, Page: 2},
		},
	}

	data, err := json.Marshal(&o)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	got := string(data)
	if !strings.Contains(got, `"title":"Sample Document"`) {
		t.Errorf("Expected title field, got %s", got)
	}
	if !strings.Contains(got, `"outline":[`) {
		t.Errorf("Expected outline array, got %s", got)
	}
}

func TestOutlineHeadingsAtLevel(t *testing.T) {
	o := Outline{
		Headings: []HeadingCandidate{
			{Text: "A", Level: LevelH1, Page: 1},
			{Text: "B", Level: LevelH2, Page: 1},
			{Text: "C", Level: LevelH1, Page: 2},
		},
	}

	h1s := o.HeadingsAtLevel(LevelH1)
	if len(h1s) != 2 {
		t.Fatalf("Expected 2 H1 headings, got %d", len(h1s))
	}
	if h1s[0].Text != "A" || h1s[1].Text != "C" {
		t.Errorf("Unexpected H1 headings: %v", h1s)
	}

	if got := o.HeadingsOnPage(1); len(got) != 2 {
		t.Errorf("Expected 2 headings on page 1, got %d", len(got))
	}

	var nilOutline *Outline
	if nilOutline.HeadingsAtLevel(LevelH1) != nil {
		t.Error("Expected nil result for nil outline")
	}
	if !nilOutline.IsEmpty() {
		t.Error("Expected nil outline to be empty")
	}
}

func TestMalformedInputError(t *testing.T) {
	err := &MalformedInputError{Page: 3, Index: 17, Reason: "negative x coordinate"}

	msg := err.Error()
	if !strings.Contains(msg, "page 3") {
		t.Errorf("Expected page in message, got %q", msg)
	}
	if !strings.Contains(msg, "17") {
		t.Errorf("Expected index in message, got %q", msg)
	}
	if !strings.Contains(msg, "negative x coordinate") {
		t.Errorf("Expected reason in message, got %q", msg)
	}
}
