// Package analysis runs the full resume/job-description analysis and document comparisons
// against the current skill taxonomy.
package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/comparison"
	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/similarity"
	"github.com/jonathan/resume-matcher/internal/suggestions"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Options configures an Engine.
type Options struct {
	Weights      scoring.Weights
	SuggestLimit int  // <= 0 means unbounded
	WritingTips  bool // append general resume writing tips to the suggestions
	Logger       zerolog.Logger
	Now          func() time.Time
}

// DefaultOptions returns equal weights, unbounded suggestions, no writing tips and a disabled logger.
func DefaultOptions() Options {
	return Options{
		Weights: scoring.DefaultWeights(),
		Logger:  zerolog.Nop(),
		Now:     time.Now,
	}
}

// Engine analyzes documents against the snapshot held by a taxonomy store.
// It is safe for concurrent use.
type Engine struct {
	store *taxonomy.Store
	opts  Options
}

// NewEngine creates an engine. The weights are validated up front.
func NewEngine(store *taxonomy.Store, opts Options) (*Engine, error) {
	if err := opts.Weights.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Engine{store: store, opts: opts}, nil
}

// Store returns the taxonomy store the engine reads from.
func (e *Engine) Store() *taxonomy.Store {
	return e.store
}

// Weights returns the weighting policy used for overall scores.
func (e *Engine) Weights() scoring.Weights {
	return e.opts.Weights
}

// WithSuggestLimit returns a copy of the engine that keeps at most limit skill suggestions.
func (e *Engine) WithSuggestLimit(limit int) *Engine {
	c := *e
	c.opts.SuggestLimit = limit
	return &c
}

// Analyze scores a resume against a job description. Similarity scoring and skill matching run
// concurrently on the same taxonomy snapshot. No report is returned on error.
func (e *Engine) Analyze(ctx context.Context, resume, job types.Document) (*types.AnalysisReport, error) {
	if err := validateDocument("resume", resume, types.RoleResume); err != nil {
		return nil, err
	}
	if err := validateDocument("job_description", job, types.RoleJobDescription); err != nil {
		return nil, err
	}

	tax, err := e.store.Get()
	if err != nil {
		return nil, err
	}

	var (
		sim                     float64
		resumeSkills, jobSkills types.SkillProfile
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		sim = similarity.ScoreText(resume.RawText, job.RawText)
		return nil
	})

	g.Go(func() error {
		var err error
		if resumeSkills, err = extraction.ExtractText(resume.RawText, tax); err != nil {
			return fmt.Errorf("failed to extract resume skills: %w", err)
		}
		if err := gCtx.Err(); err != nil {
			return err
		}
		if jobSkills, err = extraction.ExtractText(job.RawText, tax); err != nil {
			return fmt.Errorf("failed to extract job skills: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	match := matching.Match(resumeSkills, jobSkills)
	scores := scoring.Aggregate(e.opts.Weights, sim, match)

	suggested := suggestions.Suggest(match.Missing, jobSkills.Frequency, e.opts.SuggestLimit)
	if e.opts.WritingTips {
		suggested = append(suggested, suggestions.WritingTips(resume.RawText)...)
	}

	report := &types.AnalysisReport{
		OverallScore:       scoring.Percent(scores.Overall),
		SemanticSimilarity: scoring.Percent(scores.Semantic),
		SkillMatchScore:    scoring.Percent(scores.SkillMatch),
		ResumeSkills:       resumeSkills.Skills,
		JobSkills:          jobSkills.Skills,
		MissingSkills:      match.Missing,
		ResumeKeywordFreq:  resumeSkills.Frequency,
		JDKeywordFreq:      jobSkills.Frequency,
		JDSkillPriority:    jobSkills.Priority(),
		Suggestions:        suggested,
		MatchedSkills:      match.Matched,
		ExtraSkills:        match.Extra,
		MissingByCategory:  byCategory(tax, match.Missing),
		Weights:            e.opts.Weights.Report(),
		GeneratedAt:        e.opts.Now().UTC(),
	}

	e.opts.Logger.Debug().
		Str("resume_id", resume.ID).
		Str("job_id", job.ID).
		Str("taxonomy", tax.Source()).
		Float64("overall", report.OverallScore).
		Int("matched", len(match.Matched)).
		Int("missing", len(match.Missing)).
		Msg("analysis complete")

	return report, nil
}

// Compare compares two documents of any role by the overlap of their skills.
func (e *Engine) Compare(ctx context.Context, doc1, doc2 types.Document) (*types.ComparisonReport, error) {
	profiles, err := e.profiles(ctx, []types.Document{doc1, doc2})
	if err != nil {
		return nil, err
	}
	report := comparison.Compare(profiles[0], profiles[1])
	return &report, nil
}

// CompareMany compares every pair of two or more documents.
func (e *Engine) CompareMany(ctx context.Context, docs []types.Document) (*types.ComparisonMatrix, error) {
	if len(docs) < 2 {
		return nil, &InvalidInputError{Field: "documents", Message: "at least two documents are required"}
	}

	profiles, err := e.profiles(ctx, docs)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}

	matrix, err := comparison.Pairwise(ctx, ids, profiles)
	if err != nil {
		return nil, err
	}

	e.opts.Logger.Debug().Int("documents", len(docs)).Int("pairs", len(matrix.Pairs)).Msg("comparison complete")

	return &matrix, nil
}

// profiles validates docs and extracts their skills concurrently from one taxonomy snapshot.
func (e *Engine) profiles(ctx context.Context, docs []types.Document) ([]types.SkillProfile, error) {
	for i, d := range docs {
		if err := validateDocument(fmt.Sprintf("documents[%d]", i), d, ""); err != nil {
			return nil, err
		}
	}

	tax, err := e.store.Get()
	if err != nil {
		return nil, err
	}

	profiles := make([]types.SkillProfile, len(docs))
	g, gCtx := errgroup.WithContext(ctx)
	for i, d := range docs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			p, err := extraction.ExtractText(d.RawText, tax)
			if err != nil {
				return fmt.Errorf("failed to extract skills from %s: %w", d.ID, err)
			}
			profiles[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return profiles, nil
}

// byCategory groups missing skills by taxonomy category, or returns nil when nothing is missing.
func byCategory(tax *taxonomy.Taxonomy, missing []string) map[string][]string {
	if len(missing) == 0 {
		return nil
	}
	groups := make(map[string][]string)
	for _, skill := range missing {
		c := tax.Category(skill)
		groups[c] = append(groups[c], skill)
	}
	return groups
}
