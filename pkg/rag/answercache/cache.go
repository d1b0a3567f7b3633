package answercache

import (
	"context"
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"site-chatbot-be/internal/entity"
	"site-chatbot-be/internal/pkg/logger"
	"site-chatbot-be/internal/repository/contract"
)

// Hit is a successful fuzzy lookup. MatchedQuestion is the stored question
// that matched, which is rarely byte-identical to the input.
type Hit struct {
	Answer          string
	SourceTag       string
	MatchedQuestion string
}

// Cache is the fuzzy question/answer cache. Lookups scan every stored
// question and pick the best similarity ratio; exact-match-only lookups would
// miss typo and phrasing variants. The table stays small relative to query
// volume, so the linear scan is a deliberate trade for recall.
type Cache struct {
	repo      contract.CacheRepository
	threshold float64
	log       logger.ILogger
}

func NewCache(repo contract.CacheRepository, threshold float64, log logger.ILogger) *Cache {
	return &Cache{repo: repo, threshold: threshold, log: log}
}

// Get returns the best cached answer whose stored question is at least
// threshold-similar to question, or nil on a miss. Storage failures are
// logged and reported as a miss.
func (c *Cache) Get(ctx context.Context, question string) *Hit {
	questions, err := c.repo.AllQuestions(ctx)
	if err != nil {
		c.log.Error("AnswerCache", "Failed to load cached questions, treating as miss", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	if len(questions) == 0 {
		return nil
	}

	bestRatio := 0.0
	bestQuestion := ""
	for _, stored := range questions {
		ratio := similarity(question, stored)
		if ratio > bestRatio {
			bestRatio = ratio
			bestQuestion = stored
		}
	}
	if bestRatio < c.threshold {
		return nil
	}

	entry, err := c.repo.FindByQuestion(ctx, bestQuestion)
	if err != nil || entry == nil {
		c.log.Error("AnswerCache", "Matched question vanished on point lookup", map[string]interface{}{
			"question": bestQuestion,
		})
		return nil
	}

	return &Hit{
		Answer:          entry.Answer,
		SourceTag:       entry.Source,
		MatchedQuestion: entry.Question,
	}
}

// Put upserts the question/answer pair. Write failures are logged and
// swallowed: the answer has already been produced, only persistence is lost.
func (c *Cache) Put(ctx context.Context, question, answer, sourceTag string) {
	entry := &entity.CacheEntry{
		Question:  question,
		Answer:    answer,
		Source:    sourceTag,
		UpdatedAt: time.Now(),
	}
	if err := c.repo.Upsert(ctx, entry); err != nil {
		c.log.Error("AnswerCache", "Cache write failed", map[string]interface{}{
			"question": question,
			"error":    err.Error(),
		})
	}
}

// Update rewrites the answer for an exact stored question and reports whether
// a row was actually affected, so callers can tell an update from a no-op on
// a question that was never cached.
func (c *Cache) Update(ctx context.Context, question, answer, sourceTag string) bool {
	affected, err := c.repo.UpdateByQuestion(ctx, question, answer, sourceTag)
	if err != nil {
		c.log.Error("AnswerCache", "Cache update failed", map[string]interface{}{
			"question": question,
			"error":    err.Error(),
		})
		return false
	}
	return affected > 0
}

// similarity is the difflib SequenceMatcher ratio over runes, in [0, 1].
func similarity(a, b string) float64 {
	matcher := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return matcher.Ratio()
}
