package translator

import (
	"context"
	"sort"
	"strings"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Stats summarizes one batch run.
type Stats struct {
	APICalls int
	Saves    int
	Failures int
}

// Batch fills untranslated (entity, language, field) slots using a
// Translator, pacing calls with a rate limiter to respect the provider's
// limits. Per-item failures are logged and skipped; the run continues.
type Batch struct {
	translations repository.TranslationRepository
	translator   Translator
	limiter      *rate.Limiter
	sourceLang   string
	targetLangs  []string
	force        bool
	logger       *zap.Logger
}

func NewBatch(
	translations repository.TranslationRepository,
	translator Translator,
	sourceLang string,
	targetLangs []string,
	callDelay rate.Limit,
	force bool,
	logger *zap.Logger,
) *Batch {
	return &Batch{
		translations: translations,
		translator:   translator,
		limiter:      rate.NewLimiter(callDelay, 1),
		sourceLang:   sourceLang,
		targetLangs:  targetLangs,
		force:        force,
		logger:       logger,
	}
}

// Run processes the given entity types in order and returns the run totals.
// It stops early only on context cancellation.
func (b *Batch) Run(ctx context.Context, entityTypes []domain.EntityType) (Stats, error) {
	var stats Stats

	for _, et := range entityTypes {
		sets, err := b.translations.ListByEntityType(ctx, et)
		if err != nil {
			b.logger.Error("Failed to load translations",
				zap.String("entity_type", string(et)), zap.Error(err))
			stats.Failures++
			continue
		}

		ids := make([]string, 0, len(sets))
		for id := range sets {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		b.logger.Info("Translating entity type",
			zap.String("entity_type", string(et)),
			zap.Int("entities", len(ids)),
		)

		for _, id := range ids {
			if err := b.translateEntity(ctx, et, id, sets[id], &stats); err != nil {
				return stats, err
			}
		}
	}

	b.logger.Info("Batch finished",
		zap.Int("api_calls", stats.APICalls),
		zap.Int("saves", stats.Saves),
		zap.Int("failures", stats.Failures),
	)
	return stats, nil
}

// translateEntity fills the entity's missing target-language fields. A
// non-nil return means the context was cancelled.
func (b *Batch) translateEntity(
	ctx context.Context,
	et domain.EntityType,
	id string,
	set domain.TranslationSet,
	stats *Stats,
) error {
	for _, field := range domain.LocalizedFields(et) {
		source, ok := set.Get(b.sourceLang, field)
		if !ok || strings.TrimSpace(source) == "" {
			continue
		}

		for _, lang := range b.targetLangs {
			if lang == b.sourceLang {
				continue
			}
			if _, exists := set.Get(lang, field); exists && !b.force {
				continue
			}

			if err := b.limiter.Wait(ctx); err != nil {
				return err
			}

			stats.APICalls++
			translated, err := b.translator.Translate(ctx, source, b.sourceLang, lang)
			if err != nil {
				stats.Failures++
				b.logger.Warn("Translation failed, skipping field",
					zap.String("entity_type", string(et)),
					zap.String("entity_id", id),
					zap.String("field", field),
					zap.String("target_lang", lang),
					zap.Error(err),
				)
				continue
			}
			if strings.EqualFold(strings.TrimSpace(translated), strings.TrimSpace(source)) {
				b.logger.Debug("Provider returned source text unchanged, not saving",
					zap.String("entity_id", id),
					zap.String("target_lang", lang),
				)
				continue
			}

			err = b.translations.Upsert(ctx, domain.Translation{
				EntityType:   et,
				EntityID:     id,
				LanguageCode: lang,
				Field:        field,
				Value:        translated,
			})
			if err != nil {
				stats.Failures++
				b.logger.Warn("Failed to save translation",
					zap.String("entity_id", id),
					zap.String("target_lang", lang),
					zap.Error(err),
				)
				continue
			}
			stats.Saves++
		}
	}
	return nil
}
