package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/internal/config"
	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/pkg/logger"
)

//go:generate mockery --name TextGenerator --output ../mocks
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type TranslationService struct {
	generator  TextGenerator
	resolver   PrincipalResolver
	timeout    time.Duration
	interval   time.Duration
	maxTargets int
	logger     *logger.Logger
}

func NewTranslationService(generator TextGenerator, resolver PrincipalResolver, cfg *config.TranslationConfig, logger *logger.Logger) *TranslationService {
	return &TranslationService{
		generator:  generator,
		resolver:   resolver,
		timeout:    cfg.Timeout,
		interval:   cfg.CallInterval,
		maxTargets: cfg.MaxTargets,
		logger:     logger,
	}
}

func (s *TranslationService) TranslateHouseRules(ctx context.Context, caller domain.Caller, req dto.TranslateHouseRulesRequest) (*dto.TranslationResponse, error) {
	if err := requireAuthenticated(caller); err != nil {
		return nil, err
	}
	if err := s.validate(req.Text, req.SourceLanguage, req.TargetLanguages); err != nil {
		return nil, err
	}

	return s.translateAll(ctx, req.TargetLanguages, nil, func(target string) string {
		return fmt.Sprintf("Translate from %s to %s. Preserve formatting. Output only the translation:\n\n%s",
			req.SourceLanguage, target, req.Text)
	}, strings.TrimSpace)
}

// TranslateNotification includes the source text under its own language.
func (s *TranslationService) TranslateNotification(ctx context.Context, caller domain.Caller, req dto.TranslateNotificationRequest) (*dto.TranslationResponse, error) {
	if _, err := requireGlobal(ctx, s.resolver, caller); err != nil {
		return nil, err
	}
	if err := s.validate(req.Text, req.SourceLanguage, req.TargetLanguages); err != nil {
		return nil, err
	}

	seed := map[string]string{req.SourceLanguage: req.Text}
	return s.translateAll(ctx, req.TargetLanguages, seed, func(target string) string {
		return fmt.Sprintf("Translate to %s. Return only translation:\n%q", target, req.Text)
	}, stripQuotes)
}

func (s *TranslationService) validate(text, source string, targets []string) error {
	if strings.TrimSpace(text) == "" {
		return domain.InvalidArgument("text is required")
	}
	if strings.TrimSpace(source) == "" {
		return domain.InvalidArgument("source language is required")
	}
	if len(targets) == 0 {
		return domain.InvalidArgument("at least one target language is required")
	}
	if s.maxTargets > 0 && len(targets) > s.maxTargets {
		return domain.InvalidArgument(fmt.Sprintf("at most %d target languages are allowed", s.maxTargets))
	}
	for _, t := range targets {
		if strings.TrimSpace(t) == "" {
			return domain.InvalidArgument("target languages must not be empty")
		}
	}
	return nil
}

// translateAll calls the generator once per target. A failed language is
// reported in failedLanguages; only a total failure is an error.
func (s *TranslationService) translateAll(
	ctx context.Context,
	targets []string,
	seed map[string]string,
	prompt func(target string) string,
	clean func(string) string,
) (*dto.TranslationResponse, error) {
	resp := &dto.TranslationResponse{
		Translations:    make(map[string]string, len(targets)+len(seed)),
		FailedLanguages: []string{},
	}
	for lang, text := range seed {
		resp.Translations[lang] = text
	}

	var errs error
	for i, target := range targets {
		if i > 0 && s.interval > 0 {
			select {
			case <-ctx.Done():
				return nil, domain.Unavailable("translation cancelled", ctx.Err())
			case <-time.After(s.interval):
			}
		}

		text, err := s.translateOne(ctx, prompt(target))
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", target, err))
			resp.FailedLanguages = append(resp.FailedLanguages, target)
			continue
		}
		resp.Translations[target] = clean(text)
	}

	if errs != nil {
		s.logger.Warn("Some translations failed",
			zap.Strings("failed_languages", resp.FailedLanguages),
			zap.Error(errs),
		)
	}
	if len(resp.FailedLanguages) == len(targets) {
		return nil, domain.Unavailable("translation service unavailable", errs)
	}
	return resp, nil
}

func (s *TranslationService) translateOne(ctx context.Context, prompt string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.generator.Generate(ctx, prompt)
}

// stripQuotes removes one leading and one trailing quote character.
func stripQuotes(text string) string {
	text = strings.TrimSpace(text)
	if text != "" && (text[0] == '"' || text[0] == '\'') {
		text = text[1:]
	}
	if text != "" && (text[len(text)-1] == '"' || text[len(text)-1] == '\'') {
		text = text[:len(text)-1]
	}
	return text
}
