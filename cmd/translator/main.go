package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/places-directory/internal/config"
	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/pkg/logger"
	"github.com/places-directory/internal/repository/postgres"
	"github.com/places-directory/internal/translator"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// entityTypesByName maps the -models flag values to entity types.
var entityTypesByName = map[string]domain.EntityType{
	"place":                 domain.EntityPlace,
	"category":              domain.EntityCategory,
	"expectationdefinition": domain.EntityExpectation,
	"sorttagdefinition":     domain.EntitySortTag,
}

var defaultModels = []string{"place", "category", "expectationdefinition", "sorttagdefinition"}

func main() {
	models := flag.String("models", strings.Join(defaultModels, ","),
		"comma-separated entity types to translate")
	languages := flag.String("languages", "",
		"comma-separated target language codes (default: all supported except source)")
	force := flag.Bool("force", false,
		"overwrite existing translations instead of filling only empty fields")
	source := flag.String("source", "",
		"source language code (default: configured source language)")
	flag.Parse()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	sourceLang := cfg.Translator.SourceLanguage
	if *source != "" {
		sourceLang = *source
	}

	targetLangs := cfg.I18n.SupportedLanguages
	if *languages != "" {
		targetLangs = splitFlagList(*languages)
	}

	entityTypes := make([]domain.EntityType, 0, len(defaultModels))
	for _, name := range splitFlagList(*models) {
		et, ok := entityTypesByName[strings.ToLower(name)]
		if !ok {
			log.Warn("Skipping unknown model", zap.String("model", name))
			continue
		}
		entityTypes = append(entityTypes, et)
	}
	if len(entityTypes) == 0 {
		log.Fatal("No valid models to translate")
	}

	log.Info("Starting translation batch",
		zap.String("source_lang", sourceLang),
		zap.Strings("target_langs", targetLangs),
		zap.Bool("force", *force),
		zap.Duration("call_delay", cfg.Translator.CallDelay),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Build the batch
	translationRepo := postgres.NewTranslationRepository(db)
	client := translator.NewClient(&cfg.Translator, log)
	batch := translator.NewBatch(
		translationRepo,
		client,
		sourceLang,
		targetLangs,
		rate.Every(cfg.Translator.CallDelay),
		*force,
		log,
	)

	// 5. Run, stopping cleanly on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := batch.Run(ctx, entityTypes)
	if err != nil {
		log.Error("Batch interrupted", zap.Error(err))
	}

	log.Info("Translation batch finished",
		zap.Int("api_calls", stats.APICalls),
		zap.Int("saves", stats.Saves),
		zap.Int("failures", stats.Failures),
	)
}

func splitFlagList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
