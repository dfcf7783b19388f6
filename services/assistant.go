package services

import (
	"context"
	"encoding/json"
	"strings"

	"content-ops-platform/internal/ai"
	"content-ops-platform/internal/logger"
	"content-ops-platform/internal/telemetry"
	"content-ops-platform/models"
)

// AssistantService is the gateway to the AI endpoint. Every operation
// builds one prompt, submits it through the injected generator, and for
// structured operations extracts JSON from the response text.
//
// Failure contract: transport and classification failures always surface
// as *ai.ServiceError. A successful call whose body is not parseable JSON
// is treated as "no answer" and resolves to the operation's fallback
// shape instead.
type AssistantService struct {
	gen     ai.TextGenerator
	metrics *telemetry.Metrics
}

// NewAssistantService creates the gateway. gen may be nil; operations then
// fail with SERVICE_UNAVAILABLE without attempting network I/O. metrics may
// be nil.
func NewAssistantService(gen ai.TextGenerator, metrics *telemetry.Metrics) *AssistantService {
	return &AssistantService{gen: gen, metrics: metrics}
}

// Available reports whether the AI endpoint can currently be reached.
func (s *AssistantService) Available() bool {
	return s.gen != nil && s.gen.Available()
}

// generate runs the shared prompt -> call -> text pipeline for one
// operation.
func (s *AssistantService) generate(ctx context.Context, op, prompt string) (string, error) {
	if !s.Available() {
		s.metrics.RecordAssistantCall(op, true)
		return "", ai.NewServiceError(ai.CodeServiceUnavailable, nil)
	}

	text, err := s.gen.GenerateText(ctx, prompt)
	if err != nil {
		s.metrics.RecordAssistantCall(op, true)
		svcErr := ai.Classify(err)
		logger.Error("Assistant operation failed", "operation", op, "code", string(svcErr.Code), "error", err)
		return "", svcErr
	}

	s.metrics.RecordAssistantCall(op, false)
	return text, nil
}

// GenerateIdeas suggests content topics for a theme.
func (s *AssistantService) GenerateIdeas(ctx context.Context, theme string) ([]models.ContentIdea, error) {
	if strings.TrimSpace(theme) == "" {
		return nil, ai.NewServiceError(ai.CodeInvalidInput, nil)
	}

	text, err := s.generate(ctx, "generate_ideas", buildIdeasPrompt(theme))
	if err != nil {
		return nil, err
	}

	ideas := []models.ContentIdea{}
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &ideas); err != nil {
		logger.Warn("Unparseable ideas response, returning empty list", "error", err)
		return []models.ContentIdea{}, nil
	}
	return ideas, nil
}

// GenerateDraft writes a full post draft for an item's title and context.
func (s *AssistantService) GenerateDraft(ctx context.Context, title, description string) (models.Draft, error) {
	text, err := s.generate(ctx, "generate_draft", buildDraftPrompt(title, description))
	if err != nil {
		return models.Draft{}, err
	}

	var draft models.Draft
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &draft); err != nil {
		logger.Warn("Unparseable draft response", "error", err)
		return models.Draft{}, nil
	}
	return draft, nil
}

// GetEngagementBooster suggests pre-upload strategies for one item,
// optionally taking the current draft text into account.
func (s *AssistantService) GetEngagementBooster(ctx context.Context, item models.ContentItem, draftText string) (models.EngagementBooster, error) {
	text, err := s.generate(ctx, "engagement_booster", buildBoosterPrompt(item, draftText))
	if err != nil {
		return models.EngagementBooster{}, err
	}

	var booster models.EngagementBooster
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &booster); err != nil {
		logger.Warn("Unparseable booster response", "error", err)
		return models.EngagementBooster{}, nil
	}
	return booster, nil
}

// GenerateVisualIdeas suggests image and video asset ideas.
func (s *AssistantService) GenerateVisualIdeas(ctx context.Context, title, description string) (models.VisualIdeas, error) {
	text, err := s.generate(ctx, "visual_ideas", buildVisualIdeasPrompt(title, description))
	if err != nil {
		return models.VisualIdeas{ImageIdeas: []string{}}, err
	}

	ideas := models.VisualIdeas{ImageIdeas: []string{}}
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &ideas); err != nil {
		logger.Warn("Unparseable visual ideas response", "error", err)
		return models.VisualIdeas{ImageIdeas: []string{}}, nil
	}
	if ideas.ImageIdeas == nil {
		ideas.ImageIdeas = []string{}
	}
	return ideas, nil
}

// GenerateFutureStrategy plans topics for the next week or month that
// complement the existing titles.
func (s *AssistantService) GenerateFutureStrategy(ctx context.Context, existingTitles []string, timeframe string) ([]models.StrategyIdea, error) {
	text, err := s.generate(ctx, "future_strategy", buildStrategyPrompt(existingTitles, timeframe))
	if err != nil {
		return nil, err
	}

	plan := []models.StrategyIdea{}
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &plan); err != nil {
		logger.Warn("Unparseable strategy response", "error", err)
		return []models.StrategyIdea{}, nil
	}
	return plan, nil
}

// GetGlobalEngagementAnalysis reviews the whole portfolio's engagement
// numbers and returns targeted recommendations.
func (s *AssistantService) GetGlobalEngagementAnalysis(ctx context.Context, items []models.ContentItem) ([]models.EngagementInsight, error) {
	text, err := s.generate(ctx, "global_analysis", buildGlobalAnalysisPrompt(items))
	if err != nil {
		return nil, err
	}

	insights := []models.EngagementInsight{}
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &insights); err != nil {
		logger.Warn("Unparseable analysis response", "error", err)
		return []models.EngagementInsight{}, nil
	}
	return insights, nil
}

// OptimizeEngagement reviews a draft and returns per-channel tips.
func (s *AssistantService) OptimizeEngagement(ctx context.Context, content string) (models.EngagementOptimization, error) {
	text, err := s.generate(ctx, "optimize_engagement", buildOptimizePrompt(content))
	if err != nil {
		return models.EngagementOptimization{}, err
	}

	var opt models.EngagementOptimization
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &opt); err != nil {
		logger.Warn("Unparseable optimization response", "error", err)
		return models.EngagementOptimization{}, nil
	}
	return opt, nil
}

// GetPreUploadTips returns one tip per engagement dimension for an
// upcoming item.
func (s *AssistantService) GetPreUploadTips(ctx context.Context, item models.ContentItem) (models.PreUploadTips, error) {
	text, err := s.generate(ctx, "pre_upload_tips", buildPreUploadPrompt(item))
	if err != nil {
		return models.PreUploadTips{}, err
	}

	var tips models.PreUploadTips
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &tips); err != nil {
		logger.Warn("Unparseable tips response", "error", err)
		return models.PreUploadTips{}, nil
	}
	return tips, nil
}

// RefineContent rewrites, hooks, or hashtags a piece of content. The
// response is free text, not JSON.
func (s *AssistantService) RefineContent(ctx context.Context, content string, mode RefineMode) (string, error) {
	text, err := s.generate(ctx, "refine_content", buildRefinePrompt(content, mode))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// GetRecommendations returns task recommendations for one item.
func (s *AssistantService) GetRecommendations(ctx context.Context, item models.ContentItem) ([]models.Recommendation, error) {
	text, err := s.generate(ctx, "recommendations", buildRecommendationsPrompt(item))
	if err != nil {
		return nil, err
	}

	recs := []models.Recommendation{}
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &recs); err != nil {
		logger.Warn("Unparseable recommendations response", "error", err)
		return []models.Recommendation{}, nil
	}
	return recs, nil
}

// stripCodeFence removes an enclosing triple-backtick fence, optionally
// tagged "json", so fenced and unfenced responses parse identically.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimPrefix(trimmed, "json")
	trimmed = strings.TrimSpace(trimmed)
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimSpace(trimmed)
}
