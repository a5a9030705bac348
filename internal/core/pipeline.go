package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/textops/recontext/internal/config"
	"github.com/textops/recontext/internal/core/keywords"
	"github.com/textops/recontext/internal/llm"
	"github.com/textops/recontext/internal/search"
)

// defaultPromptTemplate embeds the input verbatim. Overridable via the
// [prompts] config section.
const defaultPromptTemplate = `You are a text reconstruction expert. Please analyze and reconstruct the following text:

Original text: "%s"

Please perform the following tasks:
1. Expand all slang, abbreviations, and acronyms (e.g., "lol" becomes "laughing out loud", "brb" becomes "be right back")
2. Explain the context and meaning of any colloquial expressions (e.g., "epic fail" means a significant and embarrassing mistake or failure)
3. Fill in any missing words or complete incomplete sentences to make the text coherent
4. Maintain the original tone and intent while making the text clear and professional
5. If the text appears to be a fragment of a larger conversation, provide context about what might have been discussed

Return only the reconstructed text without any additional commentary or formatting.`

// Result is the assembled outcome of one pipeline run. Sources keep the
// relevance order the search backend returned.
type Result struct {
	OriginalText      string          `json:"original_text"`
	ReconstructedText string          `json:"reconstructed_text"`
	Sources           []search.Result `json:"sources"`
}

// Pipeline runs validate, reconstruct, search, assemble. Strictly sequential,
// no retries: any stage failure aborts the run and discards prior work.
type Pipeline struct {
	llm        llm.Client
	searcher   search.Searcher
	promptTmpl string
	numResults int
}

func NewPipeline(client llm.Client, searcher search.Searcher, cfg *config.Config) *Pipeline {
	p := &Pipeline{
		llm:        client,
		searcher:   searcher,
		promptTmpl: defaultPromptTemplate,
		numResults: 5,
	}
	if cfg != nil {
		if cfg.Prompts.Reconstruction != "" {
			p.promptTmpl = cfg.Prompts.Reconstruction
		}
		if cfg.Search.NumResults > 0 {
			p.numResults = cfg.Search.NumResults
		}
	}
	return p
}

func (p *Pipeline) Process(ctx context.Context, inputText string) (*Result, error) {
	trimmed := strings.TrimSpace(inputText)
	if trimmed == "" {
		return nil, &PipelineError{Stage: StageValidation, Err: ErrEmptyInput}
	}

	prompt := fmt.Sprintf(p.promptTmpl, trimmed)
	reconstructed, err := p.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, &PipelineError{Stage: StageReconstruction, Err: err}
	}
	reconstructed = strings.TrimSpace(reconstructed)

	// The search query comes from the reconstruction, not the original:
	// expanded slang gives the backend content words to work with.
	query := keywords.Extract(reconstructed, keywords.DefaultMaxTerms)
	sources, err := p.searcher.Search(ctx, query, p.numResults)
	if err != nil {
		return nil, &PipelineError{Stage: StageSearch, Err: err}
	}

	return &Result{
		OriginalText:      trimmed,
		ReconstructedText: reconstructed,
		Sources:           sources,
	}, nil
}
