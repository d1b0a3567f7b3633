package resolver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"site-chatbot-be/internal/constant"
	"site-chatbot-be/internal/pkg/logger"
	"site-chatbot-be/pkg/llm"
	"site-chatbot-be/pkg/rag/answercache"
	"site-chatbot-be/pkg/rag/retrieve"
	"site-chatbot-be/pkg/rag/score"
	"site-chatbot-be/pkg/rag/smalltalk"
	"site-chatbot-be/pkg/translate"
)

// Outcome is the contract every entry point returns for one resolved turn.
// AnswerText is in the visitor's language; RawPivotAnswer is the pivot-language
// answer before back-translation.
type Outcome struct {
	AnswerText      string             `json:"answer_text"`
	SourceTag       string             `json:"source_tag"`
	Distance        *float64           `json:"distance"`
	Passages        []retrieve.Passage `json:"passages"`
	IsUnclear       bool               `json:"is_unclear"`
	RawPivotAnswer  string             `json:"raw_pivot_answer"`
	// PivotQuery is the pivot-language query the turn actually ran on
	// (cleaned when the pipeline reached cleaning), for history and logging.
	PivotQuery      string `json:"pivot_query"`
	DetectedLang    string `json:"detected_language"`
	ConversionScore int    `json:"conversion_score"`
}

// AnswerCache is the fuzzy cache surface the resolver needs.
type AnswerCache interface {
	Get(ctx context.Context, question string) *answercache.Hit
	Put(ctx context.Context, question, answer, sourceTag string)
}

// ContextRetriever pulls grounding passages for a pivot-language query.
type ContextRetriever interface {
	Retrieve(ctx context.Context, query string, topK int, history string) (string, float64, []retrieve.Passage)
}

// Config carries the thresholds and timeouts gating one turn.
type Config struct {
	TopK             int
	UnclearThreshold float64
	CleanTimeout     time.Duration
	GenerateTimeout  time.Duration
}

// Resolver sequences one turn: translation gate, small talk, fuzzy cache,
// query cleaning, retrieval, unclear gate, generation, cache write and
// back-translation, in that fixed order. It holds no mutable state and is
// safe for concurrent callers.
type Resolver struct {
	bridge    translate.Bridge
	smallTalk *smalltalk.Table
	cache     AnswerCache
	retriever ContextRetriever
	generator llm.Provider
	scorer    *score.Scorer
	cfg       Config
	log       logger.ILogger
}

func NewResolver(
	bridge translate.Bridge,
	smallTalk *smalltalk.Table,
	cache AnswerCache,
	retriever ContextRetriever,
	generator llm.Provider,
	scorer *score.Scorer,
	cfg Config,
	log logger.ILogger,
) *Resolver {
	return &Resolver{
		bridge:    bridge,
		smallTalk: smallTalk,
		cache:     cache,
		retriever: retriever,
		generator: generator,
		scorer:    scorer,
		cfg:       cfg,
		log:       log,
	}
}

// Resolve runs the full pipeline for one raw visitor query.
func (r *Resolver) Resolve(ctx context.Context, rawQuery string, currentScore int, history string) Outcome {
	return r.resolve(ctx, rawQuery, currentScore, history, false)
}

// Regenerate re-answers a rejected turn. It skips small talk and the cache so
// the visitor never gets the same answer back, and shares the rest of the
// pipeline with Resolve.
func (r *Resolver) Regenerate(ctx context.Context, rawQuery string, currentScore int, history string) Outcome {
	return r.resolve(ctx, rawQuery, currentScore, history, true)
}

func (r *Resolver) resolve(ctx context.Context, rawQuery string, currentScore int, history string, skipShortCircuits bool) Outcome {
	// Translation gate. Nothing else may run on a failed pivot mapping:
	// without it no downstream output can be trusted.
	pivot := r.bridge.ToPivot(ctx, rawQuery)
	if pivot.Failed {
		r.log.Warn("Resolver", "Turn aborted on translation failure", map[string]interface{}{
			"lang": pivot.Sentinel(),
		})
		maxDistance := 1.0
		return Outcome{
			AnswerText:      constant.LanguageFailMessage,
			SourceTag:       constant.SourceTranslationError,
			Distance:        &maxDistance,
			IsUnclear:       true,
			RawPivotAnswer:  constant.LanguageFailMessage,
			DetectedLang:    pivot.Sentinel(),
			ConversionScore: currentScore,
		}
	}

	// A lead signal in the query is never discarded, whichever branch the
	// turn takes from here.
	newScore := r.scorer.Score(pivot.Text, currentScore)

	if !skipShortCircuits {
		if response, ok := r.smallTalk.Match(pivot.Text); ok {
			return Outcome{
				AnswerText:      r.bridge.FromPivot(ctx, response, pivot.Lang),
				SourceTag:       constant.SourceSmallTalk,
				RawPivotAnswer:  response,
				PivotQuery:      pivot.Text,
				DetectedLang:    pivot.Lang,
				ConversionScore: newScore,
			}
		}

		if hit := r.cache.Get(ctx, pivot.Text); hit != nil {
			return Outcome{
				AnswerText:      r.bridge.FromPivot(ctx, hit.Answer, pivot.Lang),
				SourceTag:       fmt.Sprintf("Cache HIT (Matched: '%s...')", truncate(hit.MatchedQuestion, 20)),
				RawPivotAnswer:  hit.Answer,
				PivotQuery:      pivot.Text,
				DetectedLang:    pivot.Lang,
				ConversionScore: newScore,
			}
		}
	}

	cleaned := r.cleanQuery(ctx, pivot.Text)

	combinedContext, bestDistance, passages := r.retriever.Retrieve(ctx, cleaned, r.cfg.TopK, history)

	// Unclear gate. A distance exactly at the threshold still generates; the
	// retriever's failure sentinel (1.0) always lands here.
	if bestDistance > r.cfg.UnclearThreshold {
		return Outcome{
			AnswerText:      r.bridge.FromPivot(ctx, constant.UnclearQueryResponse, pivot.Lang),
			SourceTag:       constant.SourceUnclearQuery,
			Distance:        &bestDistance,
			Passages:        passages,
			IsUnclear:       true,
			RawPivotAnswer:  constant.UnclearQueryResponse,
			PivotQuery:      cleaned,
			DetectedLang:    pivot.Lang,
			ConversionScore: newScore,
		}
	}

	rawAnswer, generated := r.generateAnswer(ctx, combinedContext, cleaned)

	sourceTag := constant.SourceGenerationError
	if generated {
		sourceTag = cacheSourceTag(passages)
		// Fallback answers are never cached; a degraded answer here would
		// poison future hits.
		r.cache.Put(ctx, cleaned, rawAnswer, sourceTag)
	}

	return Outcome{
		AnswerText:      r.bridge.FromPivot(ctx, rawAnswer, pivot.Lang),
		SourceTag:       sourceTag,
		Distance:        &bestDistance,
		Passages:        passages,
		RawPivotAnswer:  rawAnswer,
		PivotQuery:      cleaned,
		DetectedLang:    pivot.Lang,
		ConversionScore: newScore,
	}
}

// cleanQuery asks the model for a typo-corrected rewrite. Cleaning is an
// optimization, not a gate: any failure degrades to the original text.
func (r *Resolver) cleanQuery(ctx context.Context, query string) string {
	cleanCtx, cancel := context.WithTimeout(ctx, r.cfg.CleanTimeout)
	defer cancel()

	cleaned, err := r.generator.Complete(cleanCtx, constant.CleaningSystemPrompt, query)
	if err != nil {
		r.log.Warn("Resolver", "Query cleaning failed, using original", map[string]interface{}{
			"error": err.Error(),
		})
		return query
	}
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return query
	}
	return cleaned
}

// generateAnswer calls the model over the retrieved context. The second
// return reports whether the text is a real answer (cacheable) or the fixed
// fallback.
func (r *Resolver) generateAnswer(ctx context.Context, combinedContext, question string) (string, bool) {
	if combinedContext == "" {
		combinedContext = constant.EmptyContextFallback
	}
	userContent := fmt.Sprintf("CONTEXT:\n%s\n\nQUESTION: %s", combinedContext, question)

	genCtx, cancel := context.WithTimeout(ctx, r.cfg.GenerateTimeout)
	defer cancel()

	answer, err := r.generator.Complete(genCtx, constant.RAGSystemPrompt, userContent)
	if err != nil {
		r.log.Error("Resolver", "Generation failed, serving fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return constant.FinalFallbackMessage, false
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return constant.FinalFallbackMessage, false
	}
	return answer, true
}

// cacheSourceTag prefers the top passage's canonical URL as provenance.
func cacheSourceTag(passages []retrieve.Passage) string {
	if len(passages) > 0 && passages[0].CanonicalURL != "" {
		return passages[0].CanonicalURL
	}
	return constant.SourceRAG
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
