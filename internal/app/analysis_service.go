package app

import (
	"context"
	"errors"
	"log"

	"healthmate/internal/model"
)

// maxReportChars bounds the prompt size regardless of document length. Longer
// reports are truncated, not summarized in multiple passes.
const maxReportChars = 8000

const romanUrduFallback = "Roman Urdu translation unavailable."

var (
	ErrFileNotFound    = errors.New("file not found")
	ErrInsightNotFound = errors.New("insight not found")
)

// TextExtractor pulls the plain-text content of a stored document.
type TextExtractor interface {
	Extract(ctx context.Context, rawURL string) (string, error)
}

// TextGenerator is the fail-soft model boundary: an empty reply means "no
// content produced", never a distinguishable error.
type TextGenerator interface {
	SafeGenerate(ctx context.Context, prompt string) string
}

type FileStore interface {
	GetByID(id uint) (*model.File, error)
}

type InsightStore interface {
	Create(insight *model.Insight) error
	GetByFileID(fileID uint) (*model.Insight, error)
}

type AnalysisEventPublisher interface {
	Publish(ctx context.Context, event model.AnalysisEvent) error
}

type InsightCache interface {
	Get(ctx context.Context, fileID uint) (*model.Insight, bool, error)
	Set(ctx context.Context, fileID uint, insight *model.Insight) error
	Delete(ctx context.Context, fileID uint) error
}

// AnalysisService sequences extraction, summarization, translation and
// persistence for one analysis request.
type AnalysisService struct {
	fileStore    FileStore
	insightStore InsightStore
	extractor    TextExtractor
	generator    TextGenerator
	publisher    AnalysisEventPublisher
	cache        InsightCache
}

func NewAnalysisService(
	fileStore FileStore,
	insightStore InsightStore,
	extractor TextExtractor,
	generator TextGenerator,
	publisher AnalysisEventPublisher,
	cache InsightCache,
) *AnalysisService {
	return &AnalysisService{
		fileStore:    fileStore,
		insightStore: insightStore,
		extractor:    extractor,
		generator:    generator,
		publisher:    publisher,
		cache:        cache,
	}
}

// Analyze runs the full pipeline for one file and returns the created insight.
// Extraction failures abort the run; model-call and parse failures degrade the
// result instead of aborting it.
func (s *AnalysisService) Analyze(ctx context.Context, userID, fileID uint) (*model.Insight, error) {
	if userID == 0 || fileID == 0 {
		return nil, ErrInvalidInput
	}

	file, err := s.fileStore.GetByID(fileID)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, ErrFileNotFound
	}

	text, err := s.extractor.Extract(ctx, file.FileURL)
	if err != nil {
		return nil, err
	}
	text = truncateChars(text, maxReportChars)

	raw := s.generator.SafeGenerate(ctx, buildStructuredPrompt(text))
	summary := parseStructuredSummary(raw)

	urdu := s.generator.SafeGenerate(ctx, buildTranslationPrompt(summary.Summary))
	degraded := summary.Summary == structuredSummaryFallback || urdu == ""
	if urdu == "" {
		urdu = romanUrduFallback
	}

	insight := &model.Insight{
		UserID:             userID,
		FileID:             file.ID,
		SummaryEnglish:     summary.Summary,
		SummaryRomanUrdu:   urdu,
		Highlights:         summary.AbnormalValues,
		QuestionsForDoctor: summary.QuestionsForDoctor,
		Suggestions:        summary.Suggestions,
	}
	if err := s.insightStore.Create(insight); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, file.ID); err != nil {
			log.Printf("invalidate insight cache failed: %v", err)
		}
	}
	if s.publisher != nil {
		status := model.AnalysisStatusCompleted
		if degraded {
			status = model.AnalysisStatusDegraded
		}
		event := model.AnalysisEvent{
			UserID:    userID,
			FileID:    file.ID,
			InsightID: insight.ID,
			Status:    status,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.Printf("publish analysis event failed: %v", err)
		}
	}

	return insight, nil
}

// GetInsight returns the stored analysis result for a file, reading through
// the cache when one is configured.
func (s *AnalysisService) GetInsight(ctx context.Context, fileID uint) (*model.Insight, error) {
	if fileID == 0 {
		return nil, ErrInvalidInput
	}

	if s.cache != nil {
		if cached, hit, err := s.cache.Get(ctx, fileID); err == nil && hit {
			return cached, nil
		}
	}

	insight, err := s.insightStore.GetByFileID(fileID)
	if err != nil {
		return nil, err
	}
	if insight == nil {
		return nil, ErrInsightNotFound
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, fileID, insight); err != nil {
			log.Printf("cache insight failed: %v", err)
		}
	}
	return insight, nil
}

func truncateChars(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
