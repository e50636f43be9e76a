package rank

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	chromem "github.com/philippgille/chromem-go"

	"github.com/tsawler/contour/model"
)

// Config holds configuration for the ranking stage.
type Config struct {
	// JobWeight is the weight of the job-to-be-done embedding in the blended
	// query. Default: 0.7
	JobWeight float64

	// PersonaWeight is the weight of the persona embedding in the blended
	// query. Default: 0.3
	PersonaWeight float64

	// TopSections is the number of ranked sections to return. Default: 15
	TopSections int

	// TopSubsections is the number of refined subsections to return.
	// Default: 20
	TopSubsections int

	// MaxSubsectionChars caps the length of each refined subsection.
	// Default: 500
	MaxSubsectionChars int

	// Collection is the chromem collection name used for the section index.
	// Default: "contour-sections"
	Collection string

	// Concurrency is the number of workers chromem uses while embedding and
	// adding section documents. Default: 1
	Concurrency int
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		JobWeight:          0.7,
		PersonaWeight:      0.3,
		TopSections:        15,
		TopSubsections:     20,
		MaxSubsectionChars: 500,
		Collection:         "contour-sections",
		Concurrency:        1,
	}
}

// Document is one extracted document entering the ranking stage.
type Document struct {
	// Name identifies the document in the output, typically its file name.
	Name string

	// Outline is the extracted outline.
	Outline *model.Outline

	// Lines are the document's text lines in document order, as produced by
	// the outline engine's aggregator.
	Lines []model.TextLine
}

// RankedSection is one section in relevance order.
type RankedSection struct {
	Document       string `json:"document"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
	Page           int    `json:"page_number"`
}

// RankedSubsection is one refined text span in relevance order.
type RankedSubsection struct {
	Document    string `json:"document"`
	RefinedText string `json:"refined_text"`
	Page        int    `json:"page_number"`
}

// Metadata describes a ranking run.
type Metadata struct {
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	JobToBeDone         string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

// Result is the full output of a ranking run.
type Result struct {
	Metadata    Metadata           `json:"metadata"`
	Sections    []RankedSection    `json:"extracted_sections"`
	Subsections []RankedSubsection `json:"subsection_analysis"`
}

// Ranker scores document sections against a persona and a job to be done.
type Ranker struct {
	config   Config
	embedder Embedder

	now func() time.Time
}

// NewRanker creates a ranker with default configuration.
func NewRanker(embedder Embedder) *Ranker {
	return NewRankerWithConfig(embedder, DefaultConfig())
}

// NewRankerWithConfig creates a ranker with custom configuration.
func NewRankerWithConfig(embedder Embedder, config Config) *Ranker {
	return &Ranker{
		config:   config,
		embedder: embedder,
		now:      time.Now,
	}
}

// Rank assembles sections from every input document, indexes them, and
// returns the most relevant sections and subsections for the persona and
// job. Documents without headings contribute nothing but still appear in the
// result metadata.
func (r *Ranker) Rank(ctx context.Context, docs []Document, persona, job string) (*Result, error) {
	result := &Result{
		Metadata: Metadata{
			InputDocuments:      make([]string, 0, len(docs)),
			Persona:             persona,
			JobToBeDone:         job,
			ProcessingTimestamp: r.now().UTC().Format(time.RFC3339),
		},
		Sections:    []RankedSection{},
		Subsections: []RankedSubsection{},
	}

	var sections []Section
	for _, doc := range docs {
		result.Metadata.InputDocuments = append(result.Metadata.InputDocuments, doc.Name)
		sections = append(sections, AssembleSections(doc.Name, doc.Outline, doc.Lines)...)
	}
	if len(sections) == 0 {
		return result, nil
	}

	query, err := r.queryEmbedding(ctx, persona, job)
	if err != nil {
		return nil, err
	}

	top, err := r.rankSections(ctx, sections, query)
	if err != nil {
		return nil, err
	}

	for i, s := range top {
		result.Sections = append(result.Sections, RankedSection{
			Document:       s.Document,
			SectionTitle:   s.Title,
			ImportanceRank: i + 1,
			Page:           s.Page,
		})
	}

	subsections, err := r.rankSubsections(ctx, top, query)
	if err != nil {
		return nil, err
	}
	result.Subsections = subsections

	return result, nil
}

// queryEmbedding embeds the persona and job texts and blends them into the
// single query vector.
func (r *Ranker) queryEmbedding(ctx context.Context, persona, job string) ([]float32, error) {
	jobVec, err := r.embedder.Embed(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("embedding job: %w", err)
	}
	personaVec, err := r.embedder.Embed(ctx, persona)
	if err != nil {
		return nil, fmt.Errorf("embedding persona: %w", err)
	}
	if len(jobVec) != len(personaVec) {
		return nil, fmt.Errorf("embedding dimensions differ: job %d, persona %d", len(jobVec), len(personaVec))
	}

	return blend(jobVec, personaVec, r.config.JobWeight, r.config.PersonaWeight), nil
}

// rankSections indexes the sections in an in-memory chromem collection and
// queries it with the blended embedding, returning the top sections in
// relevance order.
func (r *Ranker) rankSections(ctx context.Context, sections []Section, query []float32) ([]Section, error) {
	db := chromem.NewDB()
	collection, err := db.GetOrCreateCollection(r.config.Collection, nil, r.embeddingFunc())
	if err != nil {
		return nil, fmt.Errorf("creating collection %s: %w", r.config.Collection, err)
	}

	chromemDocs := make([]chromem.Document, len(sections))
	for i, s := range sections {
		content := s.Content
		if content == "" {
			// A bare heading with no body still ranks on its title.
			content = s.Title
		}
		chromemDocs[i] = chromem.Document{
			ID:      strconv.Itoa(i),
			Content: content,
			Metadata: map[string]string{
				"document": s.Document,
				"title":    s.Title,
				"page":     strconv.Itoa(s.Page),
			},
		}
	}

	concurrency := r.config.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	if err := collection.AddDocuments(ctx, chromemDocs, concurrency); err != nil {
		return nil, fmt.Errorf("indexing sections: %w", err)
	}

	// chromem requires the result count to not exceed the document count.
	k := r.config.TopSections
	if count := collection.Count(); k > count {
		k = count
	}
	if k <= 0 {
		return nil, nil
	}

	results, err := collection.QueryEmbedding(ctx, query, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("querying sections: %w", err)
	}

	top := make([]Section, 0, len(results))
	for _, res := range results {
		i, err := strconv.Atoi(res.ID)
		if err != nil || i < 0 || i >= len(sections) {
			return nil, fmt.Errorf("unexpected result id %q", res.ID)
		}
		top = append(top, sections[i])
	}
	return top, nil
}

// rankSubsections splits the top sections into spans, scores each span
// against the query by exact cosine similarity, and returns the best spans in
// relevance order. The span count is small, so brute force beats maintaining
// a second index.
func (r *Ranker) rankSubsections(ctx context.Context, top []Section, query []float32) ([]RankedSubsection, error) {
	type scored struct {
		subsection Subsection
		score      float64
	}

	var all []scored
	for _, s := range top {
		for _, sub := range SplitSubsections(s, r.config.MaxSubsectionChars) {
			vec, err := r.embedder.Embed(ctx, sub.Text)
			if err != nil {
				return nil, fmt.Errorf("embedding subsection: %w", err)
			}
			all = append(all, scored{
				subsection: sub,
				score:      cosineSimilarity(query, vec),
			})
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].score > all[j].score
	})

	limit := r.config.TopSubsections
	if limit > len(all) {
		limit = len(all)
	}

	subsections := make([]RankedSubsection, 0, limit)
	for _, s := range all[:limit] {
		subsections = append(subsections, RankedSubsection{
			Document:    s.subsection.Document,
			RefinedText: s.subsection.Text,
			Page:        s.subsection.Page,
		})
	}
	return subsections, nil
}

// embeddingFunc adapts the caller's Embedder to chromem's callback.
func (r *Ranker) embeddingFunc() chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		return r.embedder.Embed(ctx, text)
	}
}
