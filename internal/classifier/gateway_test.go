package classifier

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiegoAltamirano13/IA-MARKETING/internal/llm"
	"github.com/DiegoAltamirano13/IA-MARKETING/pkg/logging"
)

type stubLLM struct {
	response llm.Response
	err      error
	lastReq  llm.Request
	calls    int
}

func (s *stubLLM) Complete(_ context.Context, req llm.Request) (llm.Response, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return llm.Response{}, s.err
	}
	return s.response, nil
}

func TestClassifyDecodesTaggedReply(t *testing.T) {
	stub := &stubLLM{response: llm.Response{Text: "UBICACIONES: ESPECIFICA|Veracruz"}}
	g := NewGateway(stub, nil, GatewayConfig{}, logging.Default())

	got, err := g.Classify(context.Background(), "almacenes en veracruz")
	require.NoError(t, err)
	assert.Equal(t, TagLocations, got.Tag)
	assert.Equal(t, "ESPECIFICA", got.Subtype)
	assert.Equal(t, "Veracruz", got.Param)
}

func TestClassifyPromptCarriesQuestionAndRoster(t *testing.T) {
	stub := &stubLLM{response: llm.Response{Text: "HORARIOS: |"}}
	g := NewGateway(stub, nil, GatewayConfig{}, logging.Default())

	_, err := g.Classify(context.Background(), "a que hora abren")
	require.NoError(t, err)

	require.Len(t, stub.lastReq.Messages, 1)
	prompt := stub.lastReq.Messages[0].Content
	assert.Contains(t, prompt, `Pregunta: "a que hora abren"`)
	assert.Contains(t, prompt, "PLAZA GOLFO")
	assert.Contains(t, prompt, "ALMACÉN MONTERREY")
	assert.Contains(t, prompt, "UBICACIONES: [TIPO]|[VALOR]")
	assert.EqualValues(t, 100, stub.lastReq.MaxTokens)
	assert.InDelta(t, 0.1, stub.lastReq.Temperature, 0.001)
}

func TestClassifyTimeoutKind(t *testing.T) {
	stub := &stubLLM{err: context.DeadlineExceeded}
	g := NewGateway(stub, nil, GatewayConfig{Timeout: time.Second}, logging.Default())

	_, err := g.Classify(context.Background(), "hola")
	require.Error(t, err)

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindTimeout, cerr.Kind)
	assert.True(t, strings.HasPrefix(FallbackMessage(err), "Lo siento, el servicio de inteligencia artificial está tardando"))
}

func TestClassifyTransportKind(t *testing.T) {
	stub := &stubLLM{err: errors.New("connection refused")}
	g := NewGateway(stub, nil, GatewayConfig{}, logging.Default())

	_, err := g.Classify(context.Background(), "hola")
	require.Error(t, err)

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindTransport, cerr.Kind)
	assert.Equal(t, "Lo siento, hay problemas de conexión con el servicio de inteligencia artificial.", FallbackMessage(err))
}

func TestClassifyEmptyCompletionIsInternal(t *testing.T) {
	stub := &stubLLM{response: llm.Response{Text: "   "}}
	g := NewGateway(stub, nil, GatewayConfig{}, logging.Default())

	_, err := g.Classify(context.Background(), "hola")
	require.Error(t, err)

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindInternal, cerr.Kind)
	assert.Equal(t, "Lo siento, ocurrió un error inesperado al procesar tu solicitud.", FallbackMessage(err))
}

func TestFallbackMessageUnknownError(t *testing.T) {
	assert.Equal(t, "Lo siento, ocurrió un error inesperado al procesar tu solicitud.",
		FallbackMessage(errors.New("anything")))
}
