package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"health_check_project/internal/extractor"
	"health_check_project/internal/session"
)

type stubGenerator struct {
	prompts []string
	answer  string
	err     error
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.answer, g.err
}

func newAnalysisService(t *testing.T, generator Generator) (*AnalysisService, *RecordService) {
	t.Helper()
	records, store := newRecordService(t, stubExtract("血壓 120/80"))
	registerTestUser(t, store)
	if _, _, err := records.Upload("A123456789", "report.pdf", extractor.ContentTypePDF, []byte("pdf")); err != nil {
		t.Fatalf("seed upload failed: %v", err)
	}
	return NewAnalysisService(records, generator, session.NewStore(time.Minute)), records
}

func TestAnalyzeReturnsFormattedDataAndRawResult(t *testing.T) {
	generator := &stubGenerator{answer: "血壓正常，建議維持運動習慣"}
	analysis, _ := newAnalysisService(t, generator)

	healthData, result, err := analysis.Analyze(context.Background(), "A123456789")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if !strings.Contains(healthData, "血壓 120/80") || !strings.Contains(healthData, "使用者姓名: 王小明") {
		t.Errorf("health data block incomplete:\n%s", healthData)
	}
	if result != generator.answer {
		t.Errorf("analysis result must be the model's raw text, got %q", result)
	}
	if len(generator.prompts) != 1 || !strings.Contains(generator.prompts[0], healthData) {
		t.Error("analysis prompt must embed the formatted record")
	}
}

func TestAnalyzeInteractiveOpensSession(t *testing.T) {
	analysis, _ := newAnalysisService(t, &stubGenerator{answer: "ok"})

	_, _, sess, err := analysis.AnalyzeInteractive(context.Background(), "A123456789")
	if err != nil {
		t.Fatalf("AnalyzeInteractive failed: %v", err)
	}
	if sess == nil || sess.Token == "" {
		t.Fatal("expected an interactive session with a token")
	}
	if sess.Memory.Len() == 0 {
		t.Error("session memory must be seeded with the record")
	}
}

func TestInteractWithoutSession(t *testing.T) {
	analysis, _ := newAnalysisService(t, &stubGenerator{answer: "ok"})

	_, err := analysis.Interact(context.Background(), "", "血糖偏高怎麼辦")
	if !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	_, err = analysis.Interact(context.Background(), "stale-token", "血糖偏高怎麼辦")
	if !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession for unknown token, got %v", err)
	}
}

func TestInteractUsesSessionContext(t *testing.T) {
	generator := &stubGenerator{answer: "建議減少精緻糖攝取"}
	analysis, _ := newAnalysisService(t, generator)

	_, _, sess, err := analysis.AnalyzeInteractive(context.Background(), "A123456789")
	if err != nil {
		t.Fatal(err)
	}

	answer, err := analysis.Interact(context.Background(), sess.Token, "血糖偏高怎麼辦")
	if err != nil {
		t.Fatalf("Interact failed: %v", err)
	}
	if answer != generator.answer {
		t.Errorf("answer = %q", answer)
	}

	interactPrompt := generator.prompts[len(generator.prompts)-1]
	if !strings.Contains(interactPrompt, "血糖偏高怎麼辦") {
		t.Error("interact prompt must contain the query")
	}
	if !strings.Contains(interactPrompt, "血壓 120/80") {
		t.Error("interact prompt must carry the seeded record context")
	}

	// The answered turn joins the buffer for the next question.
	if sess.Memory.Len() != 2 {
		t.Errorf("memory length = %d, want 2", sess.Memory.Len())
	}
}

func TestAnalyzePropagatesGeneratorFailure(t *testing.T) {
	analysis, _ := newAnalysisService(t, &stubGenerator{err: errors.New("model offline")})

	_, _, err := analysis.Analyze(context.Background(), "A123456789")
	if err == nil || !strings.Contains(err.Error(), "model offline") {
		t.Fatalf("expected generator failure to surface, got %v", err)
	}
}
