package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"content-ops-platform/internal/ai"
	"content-ops-platform/models"
)

// stubGenerator is a scripted TextGenerator double.
type stubGenerator struct {
	response   string
	err        error
	available  bool
	calls      int
	lastPrompt string
}

func (s *stubGenerator) Available() bool {
	return s.available
}

func (s *stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	return s.response, s.err
}

func newAssistant(gen ai.TextGenerator) *AssistantService {
	return NewAssistantService(gen, nil)
}

func asServiceError(t *testing.T, err error) *ai.ServiceError {
	t.Helper()
	var svcErr *ai.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("Expected *ai.ServiceError, got %T: %v", err, err)
	}
	return svcErr
}

func TestGenerateIdeasEmptyTheme(t *testing.T) {
	gen := &stubGenerator{available: true}
	assistant := newAssistant(gen)

	for _, theme := range []string{"", "   "} {
		_, err := assistant.GenerateIdeas(context.Background(), theme)
		svcErr := asServiceError(t, err)
		if svcErr.Code != ai.CodeInvalidInput {
			t.Errorf("theme %q: expected INVALID_INPUT, got %s", theme, svcErr.Code)
		}
		if svcErr.Retryable {
			t.Errorf("INVALID_INPUT must not be retryable")
		}
	}
	if gen.calls != 0 {
		t.Errorf("Validation must happen before any network call, got %d calls", gen.calls)
	}
}

func TestOperationsFailWithoutEndpoint(t *testing.T) {
	gen := &stubGenerator{available: false}
	assistant := newAssistant(gen)

	_, err := assistant.GenerateDraft(context.Background(), "Title", "Desc")
	svcErr := asServiceError(t, err)
	if svcErr.Code != ai.CodeServiceUnavailable {
		t.Errorf("Expected SERVICE_UNAVAILABLE, got %s", svcErr.Code)
	}
	if !svcErr.Retryable {
		t.Errorf("SERVICE_UNAVAILABLE must be retryable")
	}
	if gen.calls != 0 {
		t.Errorf("Unavailable endpoint must not be called, got %d calls", gen.calls)
	}

	// nil generator behaves identically
	assistant = newAssistant(nil)
	_, err = assistant.GetRecommendations(context.Background(), models.ContentItem{ID: "item-0"})
	if asServiceError(t, err).Code != ai.CodeServiceUnavailable {
		t.Errorf("nil generator must also report SERVICE_UNAVAILABLE")
	}
}

func TestGenerateIdeasFencedAndPlainParseIdentically(t *testing.T) {
	body := `[{"title":"အိုင်ဒီယာ ၁","description":"ဖော်ပြချက် ၁"},{"title":"အိုင်ဒီယာ ၂","description":"ဖော်ပြချက် ၂"}]`

	for _, response := range []string{
		body,
		"```json\n" + body + "\n```",
		"```\n" + body + "\n```",
	} {
		gen := &stubGenerator{available: true, response: response}
		ideas, err := newAssistant(gen).GenerateIdeas(context.Background(), "ရာသီဥတု")
		if err != nil {
			t.Fatalf("response %q: unexpected error %v", response, err)
		}
		if len(ideas) != 2 {
			t.Fatalf("response %q: expected 2 ideas, got %d", response, len(ideas))
		}
		if ideas[0].Title != "အိုင်ဒီယာ ၁" {
			t.Errorf("response %q: wrong first title %q", response, ideas[0].Title)
		}
	}
}

func TestStructuredFallbacksOnMalformedResponse(t *testing.T) {
	gen := &stubGenerator{available: true, response: "sorry, I cannot help with that"}
	assistant := newAssistant(gen)
	ctx := context.Background()

	ideas, err := assistant.GenerateIdeas(ctx, "theme")
	if err != nil || len(ideas) != 0 {
		t.Errorf("ideas fallback: got %v, %v", ideas, err)
	}

	draft, err := assistant.GenerateDraft(ctx, "t", "d")
	if err != nil || draft.Draft != "" {
		t.Errorf("draft fallback: got %+v, %v", draft, err)
	}

	visual, err := assistant.GenerateVisualIdeas(ctx, "t", "d")
	if err != nil {
		t.Errorf("visual fallback error: %v", err)
	}
	if visual.ImageIdeas == nil || len(visual.ImageIdeas) != 0 {
		t.Errorf("visual fallback must carry an empty (non-nil) image list: %+v", visual)
	}

	plan, err := assistant.GenerateFutureStrategy(ctx, []string{"a"}, "week")
	if err != nil || len(plan) != 0 {
		t.Errorf("strategy fallback: got %v, %v", plan, err)
	}

	insights, err := assistant.GetGlobalEngagementAnalysis(ctx, nil)
	if err != nil || len(insights) != 0 {
		t.Errorf("analysis fallback: got %v, %v", insights, err)
	}

	recs, err := assistant.GetRecommendations(ctx, models.ContentItem{ID: "item-0"})
	if err != nil || len(recs) != 0 {
		t.Errorf("recommendations fallback: got %v, %v", recs, err)
	}
}

func TestRefineContentReturnsTrimmedRawText(t *testing.T) {
	gen := &stubGenerator{available: true, response: "  ဟုတ်ကဲ့၊ ဒီလိုရေးပါ...  \n"}
	refined, err := newAssistant(gen).RefineContent(context.Background(), "post text", RefineRewrite)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refined != "ဟုတ်ကဲ့၊ ဒီလိုရေးပါ..." {
		t.Errorf("Expected trimmed raw text, got %q", refined)
	}
}

func TestRefinePromptVariants(t *testing.T) {
	gen := &stubGenerator{available: true, response: "ok"}
	assistant := newAssistant(gen)
	ctx := context.Background()

	if _, err := assistant.RefineContent(ctx, "body", RefineHook); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(gen.lastPrompt, "3 catchy hooks") {
		t.Errorf("hook prompt wrong: %q", gen.lastPrompt)
	}

	if _, err := assistant.RefineContent(ctx, "body", RefineHashtags); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(gen.lastPrompt, "hashtags") {
		t.Errorf("hashtags prompt wrong: %q", gen.lastPrompt)
	}

	// unknown modes fall back to a rewrite
	if _, err := assistant.RefineContent(ctx, "body", RefineMode("bogus")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(gen.lastPrompt, "Rewrite this content") {
		t.Errorf("default prompt wrong: %q", gen.lastPrompt)
	}
}

func TestPromptsEmbedInputsAndLanguageDirective(t *testing.T) {
	gen := &stubGenerator{available: true, response: "[]"}
	assistant := newAssistant(gen)

	if _, err := assistant.GenerateIdeas(context.Background(), `weather "quotes" included`); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(gen.lastPrompt, `weather "quotes" included`) {
		t.Errorf("Inputs must be interpolated verbatim: %q", gen.lastPrompt)
	}
	if !strings.Contains(gen.lastPrompt, "Myanmar language") {
		t.Errorf("Prompt must carry the language directive: %q", gen.lastPrompt)
	}
}

func TestTransportErrorsSurfaceClassified(t *testing.T) {
	gen := &stubGenerator{available: true, err: errors.New("dial tcp: connection refused")}
	_, err := newAssistant(gen).OptimizeEngagement(context.Background(), "content")
	svcErr := asServiceError(t, err)
	if svcErr.Code != ai.CodeUnknownError {
		t.Errorf("Bare errors classify as UNKNOWN_ERROR, got %s", svcErr.Code)
	}
	if svcErr.Message == "" {
		t.Errorf("Surface errors must carry a localized message")
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n[1,2]\n```", `[1,2]`},
		{"  ```json\n[]\n```  ", `[]`},
		{"plain text", "plain text"},
	}
	for _, tc := range cases {
		if got := stripCodeFence(tc.in); got != tc.want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
