// Package outline implements the heading-classification and outline-assembly
// engine. It converts a stream of positioned, styled text fragments into a
// consistent, leveled document outline (title plus H1-H3 headings).
//
// No single signal in a PDF reliably marks a heading, so the engine fuses
// three independent classifiers, each voting on every line:
//
//   - [PatternClassifier] - lexical structure: numbering schemes, letter and
//     roman prefixes, heading keywords
//   - [StatisticalClassifier] - deviation from the document's body-text font
//     size baseline, combined with boldness and line width
//   - [StructuralClassifier] - document flow: short lines followed by longer
//     paragraph blocks, indentation relative to headings already placed
//
// Votes are merged per line by a deterministic fusion rule (highest
// confidence wins, ties broken by fixed source priority), low-confidence
// results are discarded, and a final repair pass demotes entries that would
// skip a nesting level so the outline always forms a valid hierarchy.
//
// The [TitleDetector] runs once, independently, over the first page and
// always produces a title (falling back to the first non-empty line, or the
// empty string for an empty document).
//
// # Usage
//
//	engine := outline.NewEngine()
//	o, err := engine.ExtractOutline(fragments)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(o.Title, len(o.Headings), "headings")
//
// All thresholds and weights live in [Config]; use [DefaultConfig] as a
// starting point. The engine is stateless between documents and safe to use
// from multiple goroutines.
package outline
