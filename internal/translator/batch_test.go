package translator_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/translator"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// fakeTranslator maps "text|lang" to a canned translation and can fail on
// demand.
type fakeTranslator struct {
	results map[string]string
	failOn  map[string]bool
	calls   int
}

func (f *fakeTranslator) Translate(_ context.Context, text, _, targetLang string) (string, error) {
	f.calls++
	key := text + "|" + targetLang
	if f.failOn[key] {
		return "", fmt.Errorf("provider error for %s", key)
	}
	if result, ok := f.results[key]; ok {
		return result, nil
	}
	return text, nil
}

// memoryTranslationRepo is an in-memory TranslationRepository.
type memoryTranslationRepo struct {
	sets    map[domain.EntityType]map[string]domain.TranslationSet
	upserts []domain.Translation
	listErr error
}

func (r *memoryTranslationRepo) ListByEntityType(_ context.Context, et domain.EntityType) (map[string]domain.TranslationSet, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.sets[et], nil
}

func (r *memoryTranslationRepo) Upsert(_ context.Context, t domain.Translation) error {
	r.upserts = append(r.upserts, t)
	return nil
}

func newRepoWithCategory(id, enName string) *memoryTranslationRepo {
	set := make(domain.TranslationSet)
	set.Set("en", "name", enName)
	return &memoryTranslationRepo{
		sets: map[domain.EntityType]map[string]domain.TranslationSet{
			domain.EntityCategory: {id: set},
		},
	}
}

func TestBatchRun(t *testing.T) {
	ctx := context.Background()

	t.Run("fills missing target languages", func(t *testing.T) {
		repo := newRepoWithCategory("1", "Restaurants")
		tr := &fakeTranslator{results: map[string]string{
			"Restaurants|tr": "Restoranlar",
			"Restaurants|ru": "Рестораны",
		}}
		batch := translator.NewBatch(repo, tr, "en", []string{"en", "tr", "ru"}, rate.Inf, false, zap.NewNop())

		stats, err := batch.Run(ctx, []domain.EntityType{domain.EntityCategory})

		assert.NoError(t, err)
		assert.Equal(t, 2, stats.APICalls)
		assert.Equal(t, 2, stats.Saves)
		assert.Equal(t, 0, stats.Failures)
		assert.Len(t, repo.upserts, 2)
		assert.Equal(t, "Restoranlar", repo.upserts[0].Value)
		assert.Equal(t, "tr", repo.upserts[0].LanguageCode)
	})

	t.Run("existing translations are skipped unless forced", func(t *testing.T) {
		repo := newRepoWithCategory("1", "Restaurants")
		repo.sets[domain.EntityCategory]["1"].Set("tr", "name", "Restoranlar")
		tr := &fakeTranslator{results: map[string]string{"Restaurants|tr": "Lokantalar"}}

		batch := translator.NewBatch(repo, tr, "en", []string{"tr"}, rate.Inf, false, zap.NewNop())
		stats, err := batch.Run(ctx, []domain.EntityType{domain.EntityCategory})

		assert.NoError(t, err)
		assert.Equal(t, 0, stats.APICalls)
		assert.Empty(t, repo.upserts)

		forced := translator.NewBatch(repo, tr, "en", []string{"tr"}, rate.Inf, true, zap.NewNop())
		stats, err = forced.Run(ctx, []domain.EntityType{domain.EntityCategory})

		assert.NoError(t, err)
		assert.Equal(t, 1, stats.APICalls)
		assert.Equal(t, 1, stats.Saves)
	})

	t.Run("per-item failure does not abort the run", func(t *testing.T) {
		repo := newRepoWithCategory("1", "Restaurants")
		tr := &fakeTranslator{
			results: map[string]string{"Restaurants|ru": "Рестораны"},
			failOn:  map[string]bool{"Restaurants|tr": true},
		}
		batch := translator.NewBatch(repo, tr, "en", []string{"tr", "ru"}, rate.Inf, false, zap.NewNop())

		stats, err := batch.Run(ctx, []domain.EntityType{domain.EntityCategory})

		assert.NoError(t, err)
		assert.Equal(t, 2, stats.APICalls)
		assert.Equal(t, 1, stats.Saves)
		assert.Equal(t, 1, stats.Failures)
	})

	t.Run("unchanged provider output is not saved", func(t *testing.T) {
		repo := newRepoWithCategory("1", "Pizza")
		tr := &fakeTranslator{} // echoes source text
		batch := translator.NewBatch(repo, tr, "en", []string{"tr"}, rate.Inf, false, zap.NewNop())

		stats, err := batch.Run(ctx, []domain.EntityType{domain.EntityCategory})

		assert.NoError(t, err)
		assert.Equal(t, 1, stats.APICalls)
		assert.Equal(t, 0, stats.Saves)
		assert.Empty(t, repo.upserts)
	})

	t.Run("cancelled context stops the run", func(t *testing.T) {
		repo := newRepoWithCategory("1", "Restaurants")
		tr := &fakeTranslator{}
		batch := translator.NewBatch(repo, tr, "en", []string{"tr"}, rate.Inf, false, zap.NewNop())

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := batch.Run(cancelled, []domain.EntityType{domain.EntityCategory})
		assert.Error(t, err)
	})
}
