package invocation

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/yungbote/civic-innovation-backend/internal/pkg/errors"
	"github.com/yungbote/civic-innovation-backend/internal/platform/logger"
	"github.com/yungbote/civic-innovation-backend/internal/platform/promptstyle"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/builder"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/localization"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/modules"
)

type recordingInvoker struct {
	calls []builder.Payload
	res   Result
	err   error
}

func (r *recordingInvoker) Invoke(_ context.Context, p builder.Payload) (Result, error) {
	r.calls = append(r.calls, p)
	return r.res, r.err
}

var pilotKey = modules.Key{Category: modules.CategoryPilots, Name: modules.SuccessPrediction}

func newTestService(t *testing.T, inv Invoker) (*Service, *tracetest.SpanRecorder) {
	t.Helper()
	p := localization.Default()
	svc := NewService(logger.NewNop(), builder.New(p), modules.NewLibrary(p), inv, nil)

	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	svc.tracer = tp.Tracer("test")
	return svc, rec
}

func pilotRequest(mode Mode) Request {
	return Request{
		Module:  pilotKey,
		Context: builder.Context{"pilot": map[string]any{"name": "Smart bins"}},
		Mode:    mode,
	}
}

func TestPrepareModes(t *testing.T) {
	svc, _ := newTestService(t, nil)

	plain, err := svc.Prepare(pilotRequest(""))
	require.NoError(t, err)
	assert.Contains(t, plain.Prompt, "Smart bins")

	saudi, err := svc.Prepare(pilotRequest(ModeSaudi))
	require.NoError(t, err)
	assert.Contains(t, saudi.Prompt, "SAUDI CONTEXT:\n- Language: English\n")
	assert.Contains(t, saudi.Prompt, plain.Prompt)

	bi, err := svc.Prepare(pilotRequest(ModeBilingual))
	require.NoError(t, err)
	assert.Contains(t, bi.ResponseJSONSchema.Properties, builder.BilingualMarker)
	assert.NotContains(t, plain.ResponseJSONSchema.Properties, builder.BilingualMarker)
}

func TestPrepareErrors(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.Prepare(Request{Module: modules.Key{Category: "pilots", Name: "nope"}})
	assert.True(t, stderrors.Is(err, ErrUnknownModule))
	assert.True(t, stderrors.Is(err, errors.ErrNotFound))

	_, err = svc.Prepare(Request{Module: pilotKey, Context: builder.Context{"pilot": ""}})
	assert.True(t, stderrors.Is(err, ErrMissingContext))
	assert.ErrorContains(t, err, "Missing required fields: pilot")

	_, err = svc.Prepare(Request{Module: pilotKey, SkipValidation: true})
	assert.NoError(t, err)

	req := pilotRequest("shouting")
	_, err = svc.Prepare(req)
	assert.True(t, stderrors.Is(err, ErrUnknownMode))
}

func TestRunWithoutInvoker(t *testing.T) {
	svc, _ := newTestService(t, nil)
	_, err := svc.Run(context.Background(), pilotRequest(ModePlain))
	assert.True(t, stderrors.Is(err, ErrNoInvoker))
	assert.True(t, stderrors.Is(err, errors.ErrUnavailable))
}

func TestRunInvokesOnceAndDecodesRaw(t *testing.T) {
	inv := &recordingInvoker{res: Result{Success: true, Raw: `{"success_probability": 71,}`}}
	svc, rec := newTestService(t, inv)

	res, err := svc.Run(context.Background(), pilotRequest(ModePlain))
	require.NoError(t, err)
	require.Len(t, inv.calls, 1)
	assert.True(t, res.Success)
	assert.Equal(t, 71.0, res.Data["success_probability"])

	want, _ := svc.Prepare(pilotRequest(ModePlain))
	assert.Equal(t, want, inv.calls[0])

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "prompt.invoke", spans[0].Name())
}

func TestRunKeepsInvokerData(t *testing.T) {
	inv := &recordingInvoker{res: Result{Success: false, Data: map[string]any{"k": "v"}, Raw: "ignored"}}
	svc, _ := newTestService(t, inv)

	res, err := svc.Run(context.Background(), pilotRequest(ModePlain))
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, map[string]any{"k": "v"}, res.Data)
}

func TestRunWrapsInvokerError(t *testing.T) {
	boom := stderrors.New("upstream down")
	inv := InvokerFunc(func(context.Context, builder.Payload) (Result, error) { return Result{}, boom })
	svc, rec := newTestService(t, inv)

	_, err := svc.Run(context.Background(), pilotRequest(ModePlain))
	assert.True(t, stderrors.Is(err, boom))
	assert.ErrorContains(t, err, "invoke pilots/successPrediction")

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "invoke failed", spans[0].Status().Description)
}

func TestPrepareDefaultLanguage(t *testing.T) {
	p := localization.Default()
	svc := NewService(nil, builder.New(p), modules.NewLibrary(p), nil, nil, WithDefaultLanguage("ar"))

	got, err := svc.Prepare(pilotRequest(ModeSaudi))
	require.NoError(t, err)
	assert.Contains(t, got.Prompt, "- Language: Arabic (formal MSA)\n")

	req := pilotRequest(ModeSaudi)
	req.Language = "en"
	got, err = svc.Prepare(req)
	require.NoError(t, err)
	assert.Contains(t, got.Prompt, "- Language: English\n")
}

func TestRunAppliesStyleGuide(t *testing.T) {
	inv := &recordingInvoker{res: Result{Success: true, Data: map[string]any{}}}
	svc, _ := newTestService(t, inv)
	WithStyleGuide(true)(svc)

	_, err := svc.Run(context.Background(), pilotRequest(ModePlain))
	require.NoError(t, err)
	require.Len(t, inv.calls, 1)

	plain, err := svc.Prepare(pilotRequest(ModePlain))
	require.NoError(t, err)
	sent := inv.calls[0]
	assert.Equal(t, promptstyle.ApplySystem(plain.SystemPrompt, promptstyle.ModeJSON), sent.SystemPrompt)
	assert.Equal(t, plain.Prompt, sent.Prompt)
	assert.NotEqual(t, plain.SystemPrompt, sent.SystemPrompt)
}
