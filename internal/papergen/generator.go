package papergen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"paperforge/internal/llm"
	"paperforge/internal/paper"
)

// Config controls the generator's request parameters.
type Config struct {
	// MaxTokens is the token budget for one reply. Bulk fills need room
	// for a whole section.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// Generator drives both pipeline entry points against one provider.
// Merges are all-or-nothing: any parse or validation failure leaves the
// target section untouched.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// FillSection drafts content for every question in the section in one
// call. Reply item i merges onto existing question i; questions beyond
// the reply length are left unchanged, and absent optional fields keep
// the existing value.
func (g *Generator) FillSection(ctx context.Context, in FillInput) error {
	if in.Section == nil {
		return fmt.Errorf("nil section")
	}
	ctx = llm.WithPurpose(ctx, "section-fill")

	req := llm.Request{
		System: fillSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildFillPrompt(in)},
		},
		Schema:      SectionFillSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("section fill failed: %w", err)
	}

	var items []fillItem
	if err := json.Unmarshal(sanitizeStructured(resp.Content), &items); err != nil {
		return fmt.Errorf("parse section fill reply: %w", err)
	}

	mergeFill(in.Section, items)
	return nil
}

// mergeFill applies reply items positionally. Runs only after the whole
// reply parsed, so a bad reply can never partially apply.
func mergeFill(s *paper.Section, items []fillItem) {
	for i, item := range items {
		q := s.QuestionAt(i)
		if q == nil {
			break
		}
		if item.Text != "" {
			q.Text = item.Text
		}
		if s.Type == paper.TypeMultipleChoice && len(item.Options) == 4 {
			q.Options = item.Options
		}
		if out := paper.CourseOutcome(item.Outcome); validOutcome(out) {
			q.Outcome = out
		}
		if bl := paper.BloomLevel(item.Bloom); validBloom(bl) {
			q.Bloom = bl
		}
	}
}

// ReviseQuestion replaces one question's content according to the action.
// A question with empty text is a no-op: there is nothing to revise.
func (g *Generator) ReviseQuestion(ctx context.Context, in ReviseInput) error {
	if in.Section == nil {
		return fmt.Errorf("nil section")
	}
	q := in.Section.QuestionAt(in.Index)
	if q == nil {
		return fmt.Errorf("question index %d out of range", in.Index)
	}
	if strings.TrimSpace(q.Text) == "" {
		return nil
	}
	if !in.Action.Valid() {
		return fmt.Errorf("unknown revision action %q", in.Action)
	}
	ctx = llm.WithPurpose(ctx, "question-revise")

	req := llm.Request{
		System: reviseSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildRevisePrompt(in, q)},
		},
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}
	if in.Section.Type == paper.TypeMultipleChoice {
		req.Schema = McqRevisionSchema
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("question revision failed: %w", err)
	}

	if in.Section.Type == paper.TypeMultipleChoice {
		var rev mcqRevision
		if err := json.Unmarshal(sanitizeStructured(resp.Content), &rev); err != nil {
			return fmt.Errorf("parse revision reply: %w", err)
		}
		q.Text = rev.Text
		q.Options = rev.Options
		return nil
	}

	if text := sanitizeSubjective(resp.Content); text != "" {
		q.Text = text
	}
	return nil
}

func validOutcome(o paper.CourseOutcome) bool {
	for _, v := range paper.CourseOutcomes {
		if o == v {
			return true
		}
	}
	return false
}

func validBloom(b paper.BloomLevel) bool {
	for _, v := range paper.BloomLevels {
		if b == v {
			return true
		}
	}
	return false
}
