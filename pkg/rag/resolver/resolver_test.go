package resolver

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"site-chatbot-be/internal/constant"
	"site-chatbot-be/internal/pkg/logger"
	"site-chatbot-be/pkg/rag/answercache"
	"site-chatbot-be/pkg/rag/retrieve"
	"site-chatbot-be/pkg/rag/score"
	"site-chatbot-be/pkg/rag/smalltalk"
	"site-chatbot-be/pkg/translate"
)

type fakeBridge struct {
	failPivot  bool
	lang       string
	fromCalls  int
	pivotCalls int
}

func (f *fakeBridge) Detect(ctx context.Context, text string) string {
	return f.lang
}

func (f *fakeBridge) ToPivot(ctx context.Context, text string) translate.PivotResult {
	f.pivotCalls++
	return translate.PivotResult{Text: text, Lang: f.lang, Failed: f.failPivot}
}

func (f *fakeBridge) FromPivot(ctx context.Context, text, destLang string) string {
	f.fromCalls++
	if destLang == "" || destLang == "en" {
		return text
	}
	return "[" + destLang + "] " + text
}

type fakeAnswerCache struct {
	entries  map[string]*answercache.Hit
	getCalls int
	putCalls int
}

func newFakeAnswerCache() *fakeAnswerCache {
	return &fakeAnswerCache{entries: make(map[string]*answercache.Hit)}
}

func (f *fakeAnswerCache) Get(ctx context.Context, question string) *answercache.Hit {
	f.getCalls++
	return f.entries[question]
}

func (f *fakeAnswerCache) Put(ctx context.Context, question, answer, sourceTag string) {
	f.putCalls++
	f.entries[question] = &answercache.Hit{Answer: answer, SourceTag: sourceTag, MatchedQuestion: question}
}

type fakeRetriever struct {
	combined string
	distance float64
	passages []retrieve.Passage
	calls    int
}

func (f *fakeRetriever) Retrieve(ctx context.Context, query string, topK int, history string) (string, float64, []retrieve.Passage) {
	f.calls++
	return f.combined, f.distance, f.passages
}

// fakeGenerator answers cleaning calls with the input text and generation
// calls with a fixed answer, unless failGenerate is set.
type fakeGenerator struct {
	answer        string
	failGenerate  bool
	generateCalls int
	cleanCalls    int
}

func (f *fakeGenerator) Complete(ctx context.Context, systemPrompt, userContent string) (string, error) {
	if systemPrompt == constant.CleaningSystemPrompt {
		f.cleanCalls++
		return userContent, nil
	}
	f.generateCalls++
	if f.failGenerate {
		return "", errors.New("model timeout")
	}
	return f.answer, nil
}

type resolverFixture struct {
	bridge    *fakeBridge
	cache     *fakeAnswerCache
	retriever *fakeRetriever
	generator *fakeGenerator
	resolver  *Resolver
}

func newFixture() *resolverFixture {
	bridge := &fakeBridge{lang: "en"}
	cache := newFakeAnswerCache()
	retriever := &fakeRetriever{distance: 0.2, combined: "Source Page (/services): We offer consulting.", passages: []retrieve.Passage{
		{Text: "We offer consulting.", SourcePath: "/services", CanonicalURL: "https://leanextconsulting.com/services", Distance: 0.2},
	}}
	generator := &fakeGenerator{answer: "We offer lean consulting and training."}

	scorer := score.NewScorer(5,
		[]string{"demo", "pricing", "consulting", "training"},
		[]string{"leanmaster", "sixsigma", "software", "about"},
	)
	cfg := Config{TopK: 5, UnclearThreshold: 0.65, CleanTimeout: 10 * time.Second, GenerateTimeout: 30 * time.Second}

	return &resolverFixture{
		bridge:    bridge,
		cache:     cache,
		retriever: retriever,
		generator: generator,
		resolver: NewResolver(bridge, smalltalk.NewDefaultTable(), cache, retriever, generator,
			scorer, cfg, logger.NewNopLogger()),
	}
}

func TestResolveTranslationFailure(t *testing.T) {
	t.Run("should abort the turn without touching any downstream stage", func(t *testing.T) {
		f := newFixture()
		f.bridge.failPivot = true
		f.bridge.lang = "hi"

		outcome := f.resolver.Resolve(context.Background(), "कुछ टूटा हुआ", 1, "")

		assert.Equal(t, constant.LanguageFailMessage, outcome.AnswerText)
		assert.Equal(t, constant.SourceTranslationError, outcome.SourceTag)
		assert.True(t, outcome.IsUnclear)
		assert.Equal(t, "ERROR-hi", outcome.DetectedLang)
		assert.NotNil(t, outcome.Distance)
		assert.Equal(t, 1.0, *outcome.Distance)
		assert.Equal(t, 1, outcome.ConversionScore, "score must not move behind the translation gate")

		assert.Zero(t, f.cache.getCalls)
		assert.Zero(t, f.retriever.calls)
		assert.Zero(t, f.generator.generateCalls)
		assert.Zero(t, f.generator.cleanCalls)
	})
}

func TestResolveSmallTalk(t *testing.T) {
	t.Run("should short-circuit on a greeting without cache write", func(t *testing.T) {
		f := newFixture()

		outcome := f.resolver.Resolve(context.Background(), "hello", 1, "")

		assert.Equal(t, constant.SourceSmallTalk, outcome.SourceTag)
		assert.Contains(t, outcome.AnswerText, "Hello!")
		assert.Nil(t, outcome.Distance)
		assert.False(t, outcome.IsUnclear)
		assert.Zero(t, f.generator.generateCalls)
		assert.Zero(t, f.cache.putCalls)
	})

	t.Run("should still bump the conversion score on small talk", func(t *testing.T) {
		f := newFixture()

		outcome := f.resolver.Resolve(context.Background(), "hello", 1, "")

		assert.Equal(t, 2, outcome.ConversionScore)
	})

	t.Run("should translate the canned reply back to the visitor language", func(t *testing.T) {
		f := newFixture()
		f.bridge.lang = "hi"

		outcome := f.resolver.Resolve(context.Background(), "hello friend", 1, "")

		assert.True(t, strings.HasPrefix(outcome.AnswerText, "[hi] "))
		assert.Equal(t, "hi", outcome.DetectedLang)
	})
}

func TestResolveCacheFlow(t *testing.T) {
	t.Run("should generate on miss then serve the second identical call from cache", func(t *testing.T) {
		f := newFixture()
		query := "What is Lean Six Sigma?"

		first := f.resolver.Resolve(context.Background(), query, 1, "")

		assert.Equal(t, "https://leanextconsulting.com/services", first.SourceTag)
		assert.Equal(t, 1, f.generator.generateCalls)
		assert.Equal(t, 1, f.cache.putCalls)

		second := f.resolver.Resolve(context.Background(), query, 1, "")

		assert.True(t, strings.HasPrefix(second.SourceTag, "Cache HIT"), "got source %q", second.SourceTag)
		assert.Equal(t, first.RawPivotAnswer, second.RawPivotAnswer)
		assert.Equal(t, 1, f.generator.generateCalls, "cache hit must not generate again")
		assert.Equal(t, 1, f.cache.putCalls, "cache hit must not rewrite the cache")
	})

	t.Run("should truncate the matched question in the hit source tag", func(t *testing.T) {
		f := newFixture()
		long := "what exactly does leanext consulting offer to manufacturing companies"
		f.cache.entries[long] = &answercache.Hit{Answer: "A lot.", SourceTag: "RAG", MatchedQuestion: long}

		outcome := f.resolver.Resolve(context.Background(), long, 1, "")

		assert.Equal(t, "Cache HIT (Matched: 'what exactly does le...')", outcome.SourceTag)
	})

	t.Run("should fall back to the RAG tag when the top passage has no canonical URL", func(t *testing.T) {
		f := newFixture()
		f.retriever.passages = []retrieve.Passage{{Text: "chunk", SourcePath: "/x", Distance: 0.2}}

		outcome := f.resolver.Resolve(context.Background(), "what is leanext", 1, "")

		assert.Equal(t, constant.SourceRAG, outcome.SourceTag)
	})
}

func TestResolveUnclearGate(t *testing.T) {
	t.Run("should generate when distance is exactly at the threshold", func(t *testing.T) {
		f := newFixture()
		f.retriever.distance = 0.65

		outcome := f.resolver.Resolve(context.Background(), "a vague question maybe", 1, "")

		assert.False(t, outcome.IsUnclear)
		assert.Equal(t, 1, f.generator.generateCalls)
	})

	t.Run("should route to unclear just above the threshold without generating", func(t *testing.T) {
		f := newFixture()
		f.retriever.distance = 0.6500001

		outcome := f.resolver.Resolve(context.Background(), "a vague question maybe", 1, "")

		assert.True(t, outcome.IsUnclear)
		assert.Equal(t, constant.SourceUnclearQuery, outcome.SourceTag)
		assert.Equal(t, constant.UnclearQueryResponse, outcome.AnswerText)
		assert.Zero(t, f.generator.generateCalls)
		assert.Zero(t, f.cache.putCalls)
	})

	t.Run("should route retrieval failure sentinel to unclear", func(t *testing.T) {
		f := newFixture()
		f.retriever.combined = ""
		f.retriever.distance = 1.0
		f.retriever.passages = nil

		outcome := f.resolver.Resolve(context.Background(), "asdkjasdkj nonsense", 1, "")

		assert.True(t, outcome.IsUnclear)
		assert.Zero(t, f.generator.generateCalls)
	})
}

func TestResolveGenerationFailure(t *testing.T) {
	t.Run("should serve the fallback and never cache it", func(t *testing.T) {
		f := newFixture()
		f.generator.failGenerate = true

		outcome := f.resolver.Resolve(context.Background(), "What is Lean Six Sigma?", 1, "")

		assert.Equal(t, constant.FinalFallbackMessage, outcome.AnswerText)
		assert.Equal(t, constant.FinalFallbackMessage, outcome.RawPivotAnswer)
		assert.Equal(t, constant.SourceGenerationError, outcome.SourceTag)
		assert.False(t, outcome.IsUnclear)
		assert.Zero(t, f.cache.putCalls, "fallback answers must never be cached")
	})
}

func TestResolveScoring(t *testing.T) {
	t.Run("should add high-intent bump on the answered branch", func(t *testing.T) {
		f := newFixture()

		outcome := f.resolver.Resolve(context.Background(), "I want pricing for consulting", 1, "")

		assert.Equal(t, 4, outcome.ConversionScore)
	})

	t.Run("should score even when the turn ends unclear", func(t *testing.T) {
		f := newFixture()
		f.retriever.distance = 0.9

		outcome := f.resolver.Resolve(context.Background(), "pricing asdkjasd", 1, "")

		assert.True(t, outcome.IsUnclear)
		assert.Equal(t, 4, outcome.ConversionScore)
	})
}

func TestRegenerate(t *testing.T) {
	t.Run("should bypass small talk and cache and always regenerate", func(t *testing.T) {
		f := newFixture()
		f.cache.entries["hello"] = &answercache.Hit{Answer: "cached", SourceTag: "RAG", MatchedQuestion: "hello"}

		outcome := f.resolver.Regenerate(context.Background(), "hello", 1, "")

		assert.Zero(t, f.cache.getCalls, "regeneration must not read the cache")
		assert.Equal(t, 1, f.generator.generateCalls)
		assert.NotEqual(t, constant.SourceSmallTalk, outcome.SourceTag)
		assert.Equal(t, "We offer lean consulting and training.", outcome.RawPivotAnswer)
	})

	t.Run("should write the regenerated answer to the cache", func(t *testing.T) {
		f := newFixture()

		f.resolver.Regenerate(context.Background(), "What is Lean Six Sigma?", 1, "")

		assert.Equal(t, 1, f.cache.putCalls)
	})

	t.Run("should keep the translation gate", func(t *testing.T) {
		f := newFixture()
		f.bridge.failPivot = true
		f.bridge.lang = "gu"

		outcome := f.resolver.Regenerate(context.Background(), "કંઈક તૂટેલું", 1, "")

		assert.Equal(t, constant.SourceTranslationError, outcome.SourceTag)
		assert.Zero(t, f.generator.generateCalls)
	})
}
