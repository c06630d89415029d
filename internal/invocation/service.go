package invocation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/civic-innovation-backend/internal/observability"
	"github.com/yungbote/civic-innovation-backend/internal/pkg/errors"
	"github.com/yungbote/civic-innovation-backend/internal/platform/ctxutil"
	"github.com/yungbote/civic-innovation-backend/internal/platform/logger"
	"github.com/yungbote/civic-innovation-backend/internal/platform/promptstyle"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/builder"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/modules"
)

const tracerName = "github.com/yungbote/civic-innovation-backend/internal/invocation"

var (
	ErrUnknownModule  = fmt.Errorf("%w: unknown prompt module", errors.ErrNotFound)
	ErrMissingContext = fmt.Errorf("%w: missing required context", errors.ErrInvalidArgument)
	ErrNoInvoker      = fmt.Errorf("%w: no AI invoker configured", errors.ErrUnavailable)
	ErrUnknownMode    = fmt.Errorf("%w: unknown build mode", errors.ErrInvalidArgument)
)

// Mode picks which builder entry point renders the payload.
type Mode string

const (
	ModePlain     Mode = "plain"
	ModeSaudi     Mode = "saudi"
	ModeBilingual Mode = "bilingual"
)

type Request struct {
	Module   modules.Key     `json:"module"`
	Context  builder.Context `json:"context"`
	Mode     Mode            `json:"mode,omitempty"`
	Language string          `json:"language,omitempty"`
	// SkipValidation builds even when required context keys are missing.
	SkipValidation bool `json:"skip_validation,omitempty"`
}

type Service struct {
	log     *logger.Logger
	builder *builder.Builder
	library *modules.Library
	invoker Invoker
	metrics *observability.Metrics
	tracer  trace.Tracer

	defaultLanguage string
	styleGuide      bool
}

type Option func(*Service)

// WithDefaultLanguage sets the language used by saudi-context builds whose
// request names none.
func WithDefaultLanguage(lang string) Option {
	return func(s *Service) { s.defaultLanguage = lang }
}

// WithStyleGuide prepends the promptstyle preamble to every system prompt
// sent to the invoker. Prepare output is unaffected.
func WithStyleGuide(enabled bool) Option {
	return func(s *Service) { s.styleGuide = enabled }
}

// NewService wires the pieces. invoker and metrics may be nil; Prepare still
// works without an invoker.
func NewService(log *logger.Logger, b *builder.Builder, lib *modules.Library, invoker Invoker, metrics *observability.Metrics, opts ...Option) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	s := &Service{
		log:     log.With("component", "invocation"),
		builder: b,
		library: lib,
		invoker: invoker,
		metrics: metrics,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Prepare resolves the module and builds its payload without calling the AI
// backend.
func (s *Service) Prepare(req Request) (builder.Payload, error) {
	mode := req.Mode
	if mode == "" {
		mode = ModePlain
	}
	cfg, ok := s.library.Get(req.Module.Category, req.Module.Name)
	if !ok {
		s.metrics.IncPromptBuild(req.Module.String(), string(mode), "not_found")
		return builder.Payload{}, fmt.Errorf("%w: %s", ErrUnknownModule, req.Module)
	}
	if !req.SkipValidation {
		if v := builder.ValidateContext(req.Context, cfg.RequiredContext...); !v.Valid {
			s.metrics.IncPromptBuild(req.Module.String(), string(mode), "invalid")
			return builder.Payload{}, fmt.Errorf("%w: %s", ErrMissingContext, v.Message)
		}
	}

	var (
		p   builder.Payload
		err error
	)
	switch mode {
	case ModePlain:
		p, err = s.builder.Build(cfg, req.Context)
	case ModeSaudi:
		lang := req.Language
		if lang == "" {
			lang = s.defaultLanguage
		}
		p, err = s.builder.BuildWithSaudiContext(cfg, req.Context, lang)
	case ModeBilingual:
		p, err = s.builder.BuildBilingual(cfg, req.Context)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	if err != nil {
		s.metrics.IncPromptBuild(req.Module.String(), string(mode), "error")
		return builder.Payload{}, err
	}
	s.metrics.IncPromptBuild(req.Module.String(), string(mode), "ok")
	return p, nil
}

// Run builds the payload and hands it to the invoker once. A result without
// Data gets its Raw text decoded with DecodeData.
func (s *Service) Run(ctx context.Context, req Request) (Result, error) {
	ctx, span := s.tracer.Start(ctx, "prompt.invoke", trace.WithAttributes(
		attribute.String("prompt.module", req.Module.String()),
		attribute.String("prompt.mode", string(req.Mode)),
	))
	defer span.End()

	log := s.log.With(ctxutil.LogFields(ctx)...).With("module", req.Module.String())

	p, err := s.Prepare(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build failed")
		log.Warn("prompt build failed", "error", err)
		return Result{}, err
	}
	if s.invoker == nil {
		span.SetStatus(codes.Error, "no invoker")
		return Result{}, ErrNoInvoker
	}
	if s.styleGuide {
		mode := ""
		if p.ResponseJSONSchema != nil {
			mode = promptstyle.ModeJSON
		}
		p.SystemPrompt = promptstyle.ApplySystem(p.SystemPrompt, mode)
	}

	fp := p.Fingerprint()
	span.SetAttributes(attribute.String("prompt.fingerprint", fp))

	start := time.Now()
	res, err := s.invoker.Invoke(ctx, p)
	dur := time.Since(start)
	if err != nil {
		s.metrics.ObserveInvocation(req.Module.String(), "error", dur)
		span.RecordError(err)
		span.SetStatus(codes.Error, "invoke failed")
		log.Error("prompt invocation failed", "fingerprint", fp, "duration_ms", dur.Milliseconds(), "error", err)
		return Result{}, fmt.Errorf("invoke %s: %w", req.Module, err)
	}

	if res.Data == nil && res.Raw != "" {
		if data, derr := DecodeData(res.Raw); derr == nil {
			res.Data = data
		} else {
			log.Warn("model output could not be decoded", "fingerprint", fp, "raw", res.Raw)
		}
	}

	status := "ok"
	if !res.Success {
		status = "unsuccessful"
	}
	s.metrics.ObserveInvocation(req.Module.String(), status, dur)
	span.SetAttributes(attribute.Bool("prompt.success", res.Success))
	log.Info("prompt invoked", "fingerprint", fp, "success", res.Success, "duration_ms", dur.Milliseconds())
	return res, nil
}
