package service

import (
	"context"

	"health_check_project/internal/llm"
	"health_check_project/internal/session"
)

// Generator is the opaque prompt → text collaborator.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// AnalysisService formats a retrieved record into a prompt, forwards it to
// the model server and hands back the raw response. Non-owner retrievals also
// open an interactive session for follow-up questions.
type AnalysisService struct {
	records  *RecordService
	llm      Generator
	sessions *session.Store
}

func NewAnalysisService(records *RecordService, generator Generator, sessions *session.Store) *AnalysisService {
	return &AnalysisService{records: records, llm: generator, sessions: sessions}
}

// Analyze is the owner (read-only) path.
func (s *AnalysisService) Analyze(ctx context.Context, idNumber string) (healthData, result string, err error) {
	healthData, result, _, err = s.analyze(ctx, idNumber, false)
	return healthData, result, err
}

// AnalyzeInteractive additionally opens a TTL-bound session whose token
// authorizes follow-up interact calls.
func (s *AnalysisService) AnalyzeInteractive(ctx context.Context, idNumber string) (healthData, result string, sess *session.Session, err error) {
	return s.analyze(ctx, idNumber, true)
}

func (s *AnalysisService) analyze(ctx context.Context, idNumber string, interactive bool) (string, string, *session.Session, error) {
	record, err := s.records.Retrieve(idNumber)
	if err != nil {
		return "", "", nil, err
	}

	healthData := FormatRecord(record)
	memory := llm.NewMemory()
	memory.Save("健檢資料", healthData)

	result, err := s.llm.Generate(ctx, llm.AnalysisPrompt(healthData))
	if err != nil {
		return "", "", nil, err
	}

	var sess *session.Session
	if interactive {
		sess = s.sessions.Create(idNumber, memory)
	}
	return healthData, result, sess, nil
}

// SessionExists reports whether a token still resolves to a live session.
func (s *AnalysisService) SessionExists(token string) bool {
	_, found := s.sessions.Get(token)
	return found
}

// Interact answers one follow-up question inside an established session.
func (s *AnalysisService) Interact(ctx context.Context, token, query string) (string, error) {
	sess, found := s.sessions.Get(token)
	if !found {
		return "", ErrNoSession
	}

	prompt := llm.InteractivePrompt(sess.Memory.Render(), query)
	answer, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	sess.Memory.Save(query, answer)
	return answer, nil
}
