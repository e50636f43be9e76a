package outline

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/tsawler/contour/model"
)

// PatternClassifier scores lines purely from lexical structure: explicit
// numbering schemes, letter and roman-numeral prefixes, and heading keywords.
// It is deterministic and never misses well-formed numbering, which makes it
// the highest-priority voter.
type PatternClassifier struct {
	config PatternConfig

	numbered *regexp.Regexp
	lettered *regexp.Regexp
	roman    *regexp.Regexp
}

// NewPatternClassifier creates a pattern classifier with default configuration.
func NewPatternClassifier() *PatternClassifier {
	return NewPatternClassifierWithConfig(DefaultPatternConfig())
}

// NewPatternClassifierWithConfig creates a pattern classifier with custom configuration.
func NewPatternClassifierWithConfig(config PatternConfig) *PatternClassifier {
	// Lettered and roman prefixes require the trailing dot: the dotless
	// forms collide with ordinary words ("I think", "A plan").
	return &PatternClassifier{
		config:   config,
		numbered: regexp.MustCompile(`^\s*(\d+(?:\.\d+)*)\.?\s+\S`),
		lettered: regexp.MustCompile(`^\s*[A-Z]\.\s+\S`),
		roman:    regexp.MustCompile(`^\s*[IVXLCDM]+\.\s+\S`),
	}
}

// PatternContext carries the sibling context a keyword-only match needs to
// choose its level. It accumulates as lines are classified in document order.
type PatternContext struct {
	// LastNumberedLevel is the level of the most recent numbered heading
	// vote, or LevelNone if no numbered heading has been seen yet.
	LastNumberedLevel model.Level
}

// Classify scores one line. It returns the vote and true, or a zero Vote and
// false when the classifier abstains. The context is updated when the line
// matches a numbering pattern.
func (c *PatternClassifier) Classify(line model.TextLine, ctx *PatternContext) (Vote, bool) {
	text := strings.TrimSpace(line.Text)
	if text == "" {
		return Vote{}, false
	}

	if m := c.numbered.FindStringSubmatch(text); m != nil {
		level := levelFromNumbering(m[1])
		if ctx != nil {
			ctx.LastNumberedLevel = level
		}
		return Vote{
			Source:     SourcePattern,
			Level:      level,
			Confidence: c.config.NumberedConfidence,
			Rationale:  RationaleNumbered,
		}, true
	}

	if c.roman.MatchString(text) {
		if ctx != nil {
			ctx.LastNumberedLevel = model.LevelH1
		}
		return Vote{
			Source:     SourcePattern,
			Level:      model.LevelH1,
			Confidence: c.config.NumberedConfidence,
			Rationale:  RationaleRoman,
		}, true
	}

	if c.lettered.MatchString(text) {
		if ctx != nil {
			ctx.LastNumberedLevel = model.LevelH1
		}
		return Vote{
			Source:     SourcePattern,
			Level:      model.LevelH1,
			Confidence: c.config.NumberedConfidence,
			Rationale:  RationaleLettered,
		}, true
	}

	if c.matchesKeyword(text) {
		// Keyword-only matches default to H1 unless a numbered sibling
		// context already established a level.
		level := model.LevelH1
		if ctx != nil && ctx.LastNumberedLevel != model.LevelNone {
			level = ctx.LastNumberedLevel
		}
		return Vote{
			Source:     SourcePattern,
			Level:      level,
			Confidence: c.config.KeywordConfidence,
			Rationale:  RationaleKeyword,
		}, true
	}

	return Vote{}, false
}

// levelFromNumbering maps numbering depth to a heading level: one segment is
// H1, two is H2, three or more is H3.
func levelFromNumbering(prefix string) model.Level {
	depth := strings.Count(prefix, ".") + 1
	return model.LevelForDepth(depth)
}

// matchesKeyword reports whether the line starts with a heading keyword,
// compared under Unicode case folding. Casers are stateful, so one is built
// per call rather than held on the classifier.
func (c *PatternClassifier) matchesKeyword(text string) bool {
	lower := cases.Fold().String(text)
	for _, kw := range c.config.Keywords {
		if !strings.HasPrefix(lower, kw) {
			continue
		}
		// The keyword must be a whole word: "Section 2" matches,
		// "Sectional drawings" does not.
		rest := lower[len(kw):]
		if rest == "" || !isLetter(rest[0]) {
			return true
		}
	}
	return false
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
