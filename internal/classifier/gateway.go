package classifier

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/DiegoAltamirano13/IA-MARKETING/internal/directory"
	"github.com/DiegoAltamirano13/IA-MARKETING/internal/llm"
	"github.com/DiegoAltamirano13/IA-MARKETING/internal/nlp"
	"github.com/DiegoAltamirano13/IA-MARKETING/pkg/logging"
)

const (
	defaultTimeout     = 20 * time.Second
	defaultMaxTokens   = 100
	defaultTemperature = 0.1
)

// Gateway asks an external language model to classify a user message into a
// routing tag. Completions are constrained to the tagged wire format decoded
// by Parse.
type Gateway struct {
	llm        llm.Client
	normalizer *nlp.Normalizer
	timeout    time.Duration
	maxTokens  int32
	tracer     trace.Tracer
	logger     *logging.Logger
}

// GatewayConfig holds optional tuning knobs. Zero values fall back to the
// package defaults.
type GatewayConfig struct {
	Timeout   time.Duration
	MaxTokens int
}

// NewGateway builds a classifier gateway on top of a completion client.
func NewGateway(client llm.Client, normalizer *nlp.Normalizer, cfg GatewayConfig, logger *logging.Logger) *Gateway {
	if client == nil {
		panic("classifier: llm client is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Gateway{
		llm:        client,
		normalizer: normalizer,
		timeout:    cfg.Timeout,
		maxTokens:  int32(cfg.MaxTokens),
		tracer:     otel.Tracer("almassist.internal.classifier"),
		logger:     logger,
	}
}

// Classify sends the user message to the model and decodes the tagged reply.
// The message is spell-normalized first so typos do not skew the
// classification. All failures come back as *Error with a kind the caller
// can map to a user-facing apology.
func (g *Gateway) Classify(ctx context.Context, message string) (Response, error) {
	ctx, span := g.tracer.Start(ctx, "classifier.Classify")
	defer span.End()

	corrected := message
	if g.normalizer != nil {
		corrected = g.normalizer.Normalize(ctx, message)
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.llm.Complete(callCtx, llm.Request{
		Messages: []llm.ChatMessage{
			{Role: llm.ChatRoleUser, Content: buildPrompt(corrected)},
		},
		MaxTokens:   g.maxTokens,
		Temperature: defaultTemperature,
	})
	if err != nil {
		kind := KindTransport
		if errors.Is(err, context.DeadlineExceeded) {
			kind = KindTimeout
		}
		span.RecordError(err)
		g.logger.Error("intent classification failed",
			"kind", kind.String(),
			"error", err.Error(),
		)
		return Response{}, &Error{Kind: kind, Err: err}
	}

	if strings.TrimSpace(resp.Text) == "" {
		err := errors.New("empty completion")
		span.RecordError(err)
		g.logger.Error("intent classification failed", "kind", KindInternal.String(), "error", err.Error())
		return Response{}, &Error{Kind: KindInternal, Err: err}
	}

	decoded := Parse(resp.Text)
	span.SetAttributes(attribute.String("classifier.tag", string(decoded.Tag)))
	g.logger.Info("intent classified",
		"tag", string(decoded.Tag),
		"subtype", decoded.Subtype,
		"has_param", decoded.Param != "",
	)
	return decoded, nil
}

const companyContext = `Eres ALMAssist, el asistente virtual de Argo Almacenadora.
En ARGO ofrecemos soluciones integrales de almacenaje,
logística y comercio exterior para optimizar tu cadena de suministro y reducir tiempos y costos.
Con más de 34 años de experiencia y una infraestructura especializada en puntos estratégicos de
la República Mexicana, buscamos ser más que un proveedor, un aliado estratégico de nuestros
clientes. Contamos con la autorización de la Secretaría de Hacienda y Crédito Público (SHCP) para
operar como Almacén General de Depósito y ofrecer el servicio de almacenaje de mercancía
nacional o de importación (Almacén Fiscal) amparadas por Certificados de Depósito; ya sea en
nuestros almacenes operados de forma directa o mediante un esquema de Habilitación de
instalaciones de terceros (almacenes, bodegas, silos, entre otros).`

// buildPrompt assembles the constrained-output classification prompt. The
// location roster is generated from the directory so the model never invents
// a warehouse.
func buildPrompt(question string) string {
	var roster strings.Builder
	for _, plaza := range directory.Plazas {
		roster.WriteString("- " + plaza + ": ")
		var names []string
		for _, loc := range directory.ByPlaza(plaza) {
			names = append(names, loc.Name)
		}
		roster.WriteString(strings.Join(names, ", "))
		roster.WriteString("\n")
	}

	return fmt.Sprintf(`Eres ALMAssist, asistente especializado de ARGO Almacenadora, actuando como ejecutivo comercial de prospección y atención a clientes.

OBJETIVO PRINCIPAL:
Proporcionar información clara, precisa y profesional sobre servicios especializados de almacenaje y logística como Almacén General de Depósito, captando solicitudes de información, quejas o requerimientos de clientes activos.

CONTEXTO DE LA EMPRESA:
%s

MARCO LEGAL DE REFERENCIA:
• Ley General de Organizaciones y Actividades Auxiliares del Crédito
• Ley General de Títulos y Operaciones de Crédito
• Ley Aduanera

UBICACIONES DISPONIBLES (SOLO estas):
%s
INSTRUCCIONES ESPECÍFICAS:
1. TONO: Formal, cordial y empático (ejecutivo comercial). Sin lenguaje emotivo ni promocional.
2. Para UBICACIONES: Responder EXACTAMENTE "UBICACIONES: [TIPO]|[VALOR]"
- TIPOS: GENERAL, ESPECIFICA, DETALLES, REFERENCIA, CERCANA
3. Si preguntan por ubicación cercana: "UBICACIONES: CERCANA|"
4. Si mencionan ciudad/estado: "UBICACIONES: ESPECIFICA|[CIUDAD]"
5. Para SERVICIOS: "SERVICIOS: [TIPO]|[DETALLE]"
6. Para HORARIOS: "HORARIOS: |"
7. Para RESTRICCIONES: "RESTRICCIONES: |"
8. Para COTIZACIONES: "COTIZACION: |"
9. Para CONTACTO HUMANO: "ATENCION_CLIENTE: EJECUTIVO|"
10. Si no tienes información suficiente: Ofrecer contacto de ejecutivo humano inmediatamente.
11. Las respuestas deben estar respaldadas por el marco legal mencionado cuando sea pertinente.

EJEMPLOS DE RESPUESTAS:
- "¿Dónde tienen almacenes?" → "UBICACIONES: GENERAL|"
- "Almacenes en Veracruz" → "UBICACIONES: ESPECIFICA|Veracruz"
- "Quiero la más cercana" → "UBICACIONES: CERCANA|"
- "Almacén Ulúa" → "UBICACIONES: ESPECIFICA|Ulúa"
- "¿Qué servicios ofrecen?" → "SERVICIOS: GENERAL|"
- "Necesito hablar con alguien" → "ATENCION_CLIENTE: EJECUTIVO|"
- "No entiendo" → "Le comento que..."
- "¿A qué hora abren?" → "HORARIOS: |"
- "¿Qué no se puede almacenar?" → "RESTRICCIONES: |"

Pregunta: "%s"

Responde SOLO con el formato especificado, manteniendo el tono formal de ejecutivo comercial y refiriendo al marco legal cuando corresponda:`, companyContext, roster.String(), question)
}
