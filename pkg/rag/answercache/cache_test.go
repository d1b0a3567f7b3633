package answercache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"site-chatbot-be/internal/entity"
	"site-chatbot-be/internal/pkg/logger"
)

// fakeCacheRepo is an in-memory contract.CacheRepository.
type fakeCacheRepo struct {
	entries     map[string]*entity.CacheEntry
	failReads   bool
	upsertCalls int
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{entries: make(map[string]*entity.CacheEntry)}
}

func (f *fakeCacheRepo) AllQuestions(ctx context.Context) ([]string, error) {
	if f.failReads {
		return nil, errors.New("connection refused")
	}
	questions := make([]string, 0, len(f.entries))
	for q := range f.entries {
		questions = append(questions, q)
	}
	return questions, nil
}

func (f *fakeCacheRepo) FindByQuestion(ctx context.Context, question string) (*entity.CacheEntry, error) {
	if f.failReads {
		return nil, errors.New("connection refused")
	}
	return f.entries[question], nil
}

func (f *fakeCacheRepo) Upsert(ctx context.Context, entry *entity.CacheEntry) error {
	f.upsertCalls++
	f.entries[entry.Question] = entry
	return nil
}

func (f *fakeCacheRepo) UpdateByQuestion(ctx context.Context, question, answer, source string) (int64, error) {
	existing, ok := f.entries[question]
	if !ok {
		return 0, nil
	}
	existing.Answer = answer
	existing.Source = source
	existing.UpdatedAt = time.Now()
	return 1, nil
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("should return exact match after put", func(t *testing.T) {
		repo := newFakeCacheRepo()
		cache := NewCache(repo, 0.85, logger.NewNopLogger())

		cache.Put(ctx, "What services does Leanext offer?", "We offer consulting.", "RAG")
		hit := cache.Get(ctx, "What services does Leanext offer?")

		assert.NotNil(t, hit)
		assert.Equal(t, "We offer consulting.", hit.Answer)
		assert.Equal(t, "RAG", hit.SourceTag)
		assert.Equal(t, "What services does Leanext offer?", hit.MatchedQuestion)
	})

	t.Run("should match a near-duplicate question and report the stored one", func(t *testing.T) {
		repo := newFakeCacheRepo()
		cache := NewCache(repo, 0.85, logger.NewNopLogger())

		cache.Put(ctx, "What services does Leanext offer?", "We offer consulting.", "RAG")
		hit := cache.Get(ctx, "What servces does Leanext offer?") // one typo

		assert.NotNil(t, hit)
		assert.Equal(t, "What services does Leanext offer?", hit.MatchedQuestion)
	})

	t.Run("should miss on an unrelated question", func(t *testing.T) {
		repo := newFakeCacheRepo()
		cache := NewCache(repo, 0.85, logger.NewNopLogger())

		cache.Put(ctx, "What services does Leanext offer?", "We offer consulting.", "RAG")
		hit := cache.Get(ctx, "how do I reset my router password")

		assert.Nil(t, hit)
	})

	t.Run("should match similarity exactly at the threshold", func(t *testing.T) {
		repo := newFakeCacheRepo()
		// "abcdefgh" vs "abcdefgX": 7 matching runes of 16 total, ratio 0.875.
		cache := NewCache(repo, 0.875, logger.NewNopLogger())

		cache.Put(ctx, "abcdefgh", "answer", "RAG")
		hit := cache.Get(ctx, "abcdefgX")

		assert.NotNil(t, hit)
	})

	t.Run("should miss similarity just below the threshold", func(t *testing.T) {
		repo := newFakeCacheRepo()
		cache := NewCache(repo, 0.876, logger.NewNopLogger())

		cache.Put(ctx, "abcdefgh", "answer", "RAG")
		hit := cache.Get(ctx, "abcdefgX")

		assert.Nil(t, hit)
	})

	t.Run("should treat storage failure as a miss", func(t *testing.T) {
		repo := newFakeCacheRepo()
		repo.entries["stored"] = &entity.CacheEntry{Question: "stored", Answer: "a", Source: "RAG"}
		repo.failReads = true
		cache := NewCache(repo, 0.85, logger.NewNopLogger())

		hit := cache.Get(ctx, "stored")

		assert.Nil(t, hit)
	})

	t.Run("should miss on empty cache", func(t *testing.T) {
		repo := newFakeCacheRepo()
		cache := NewCache(repo, 0.85, logger.NewNopLogger())

		assert.Nil(t, cache.Get(ctx, "anything"))
	})
}

func TestPut(t *testing.T) {
	ctx := context.Background()

	t.Run("should overwrite on duplicate question without duplicate rows", func(t *testing.T) {
		repo := newFakeCacheRepo()
		cache := NewCache(repo, 0.85, logger.NewNopLogger())

		cache.Put(ctx, "q", "first", "RAG")
		cache.Put(ctx, "q", "second", "https://leanextconsulting.com/services")
		hit := cache.Get(ctx, "q")

		assert.Len(t, repo.entries, 1)
		assert.Equal(t, "second", hit.Answer)
		assert.Equal(t, "https://leanextconsulting.com/services", hit.SourceTag)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("should report true when a row was updated", func(t *testing.T) {
		repo := newFakeCacheRepo()
		cache := NewCache(repo, 0.85, logger.NewNopLogger())

		cache.Put(ctx, "q", "old", "RAG")
		updated := cache.Update(ctx, "q", "new", "RAG-Regen")

		assert.True(t, updated)
		assert.Equal(t, "new", repo.entries["q"].Answer)
		assert.Equal(t, "RAG-Regen", repo.entries["q"].Source)
	})

	t.Run("should report false when no row matches", func(t *testing.T) {
		repo := newFakeCacheRepo()
		cache := NewCache(repo, 0.85, logger.NewNopLogger())

		assert.False(t, cache.Update(ctx, "never cached", "new", "RAG-Regen"))
	})
}
