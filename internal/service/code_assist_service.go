// FILE: internal/service/code_assist_service.go
package service

import (
	"context"

	"ai-interview-be/internal/apperror"
	"ai-interview-be/internal/dto"
	"ai-interview-be/internal/pkg/logger"
	"ai-interview-be/pkg/interview/prompt"
	"ai-interview-be/pkg/llm"
)

// ICodeAssistService exposes the standalone code-assist operations.
// They run outside any session; input is the editor content, output is
// prose. Unlike the interview flow there is no fallback text: a backend
// failure surfaces to the caller.
type ICodeAssistService interface {
	ReviewCode(ctx context.Context, req *dto.ReviewCodeRequest) (*dto.ReviewCodeResponse, error)
	GetHint(ctx context.Context, req *dto.HintRequest) (*dto.HintResponse, error)
	ExplainCode(ctx context.Context, req *dto.ExplainCodeRequest) (*dto.ExplainCodeResponse, error)
}

type codeAssistService struct {
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewCodeAssistService(llmProvider llm.LLMProvider, log logger.ILogger) ICodeAssistService {
	return &codeAssistService{
		llmProvider: llmProvider,
		logger:      log,
	}
}

func (s *codeAssistService) ReviewCode(ctx context.Context, req *dto.ReviewCodeRequest) (*dto.ReviewCodeResponse, error) {
	if req.Code == "" || req.Language == "" {
		return nil, apperror.Validation("Code and language are required")
	}

	composed := prompt.NewReviewBuilder(req.Code, req.Language, req.ProblemTitle).Build()

	review, err := s.llmProvider.Generate(ctx, composed.Prompt,
		llm.WithSystemPrompt(composed.System),
		llm.WithTemperature(0.3),
		llm.WithMaxTokens(1024),
	)
	if err != nil {
		s.logger.Warn("CodeAssistService", "Code review generation failed", map[string]interface{}{"error": err.Error()})
		return nil, apperror.Wrap(apperror.KindValidation, "Failed to review code", err)
	}

	return &dto.ReviewCodeResponse{Review: review}, nil
}

func (s *codeAssistService) GetHint(ctx context.Context, req *dto.HintRequest) (*dto.HintResponse, error) {
	if req.Code == "" || req.Language == "" || req.ProblemTitle == "" {
		return nil, apperror.Validation("Code, language, and problem title are required")
	}

	composed := prompt.NewHintBuilder(req.Code, req.Language, req.ProblemTitle, req.ProblemDescription).Build()

	hint, err := s.llmProvider.Generate(ctx, composed.Prompt,
		llm.WithSystemPrompt(composed.System),
		llm.WithTemperature(0.5),
		llm.WithMaxTokens(256),
	)
	if err != nil {
		s.logger.Warn("CodeAssistService", "Hint generation failed", map[string]interface{}{"error": err.Error()})
		return nil, apperror.Wrap(apperror.KindValidation, "Failed to generate hint", err)
	}

	return &dto.HintResponse{Hint: hint}, nil
}

func (s *codeAssistService) ExplainCode(ctx context.Context, req *dto.ExplainCodeRequest) (*dto.ExplainCodeResponse, error) {
	if req.Code == "" || req.Language == "" {
		return nil, apperror.Validation("Code and language are required")
	}

	composed := prompt.NewExplainBuilder(req.Code, req.Language).Build()

	explanation, err := s.llmProvider.Generate(ctx, composed.Prompt,
		llm.WithSystemPrompt(composed.System),
		llm.WithTemperature(0.3),
		llm.WithMaxTokens(512),
	)
	if err != nil {
		s.logger.Warn("CodeAssistService", "Explanation generation failed", map[string]interface{}{"error": err.Error()})
		return nil, apperror.Wrap(apperror.KindValidation, "Failed to explain code", err)
	}

	return &dto.ExplainCodeResponse{Explanation: explanation}, nil
}
