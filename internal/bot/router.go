package bot

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/DiegoAltamirano13/IA-MARKETING/internal/classifier"
	"github.com/DiegoAltamirano13/IA-MARKETING/internal/directory"
	"github.com/DiegoAltamirano13/IA-MARKETING/internal/observability/metrics"
	"github.com/DiegoAltamirano13/IA-MARKETING/internal/services"
	"github.com/DiegoAltamirano13/IA-MARKETING/internal/session"
	"github.com/DiegoAltamirano13/IA-MARKETING/pkg/logging"
)

const (
	emptyMessageReply = "Por favor, escribe un mensaje."
	genericReply      = "¿Podría proporcionar más detalles sobre su consulta? Un ejecutivo se pondrá en contacto si es necesario."
	panicReply        = "Lo siento, ocurrió un error inesperado al procesar tu solicitud."
)

// IntentClassifier is what the router needs from the classifier gateway.
type IntentClassifier interface {
	Classify(ctx context.Context, message string) (classifier.Response, error)
}

// Responder is a domain module that can answer messages without the
// classifier. Tried in registration order when classification fails.
type Responder interface {
	CanHandle(message string) bool
	Handle(ctx context.Context, userID, message string) string
}

// Router owns one full conversational turn: session bookkeeping, short
// circuit branches (onboarding, follow-ups, greetings, menu digits), intent
// classification and dispatch to the domain responders.
type Router struct {
	sessions  *session.Store
	intents   IntentClassifier
	locations *directory.Responder
	services  *services.Responder
	fallbacks []Responder
	metrics   *metrics.ChatMetrics
	logger    *logging.Logger
}

// NewRouter wires the dialogue controller. metrics may be nil.
func NewRouter(
	sessions *session.Store,
	intents IntentClassifier,
	locations *directory.Responder,
	svc *services.Responder,
	chatMetrics *metrics.ChatMetrics,
	logger *logging.Logger,
) *Router {
	if sessions == nil {
		panic("bot: session store is required")
	}
	if locations == nil || svc == nil {
		panic("bot: responders are required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Router{
		sessions:  sessions,
		intents:   intents,
		locations: locations,
		services:  svc,
		fallbacks: []Responder{locations, svc},
		metrics:   chatMetrics,
		logger:    logger,
	}
}

// ProcessMessage runs one turn and always returns a non-empty reply. It never
// panics outward: any escaped failure becomes an apology.
func (r *Router) ProcessMessage(ctx context.Context, userID, message string) (reply string) {
	start := time.Now()
	route := "responder"
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("turn processing panicked", "panic", p)
			reply = panicReply
			route = "panic"
		}
		r.metrics.ObserveMessage(route)
		r.metrics.ObserveTurnLatency(route, time.Since(start).Seconds())
	}()

	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		route = "empty"
		return emptyMessageReply
	}

	// A brand-new conversation gets the onboarding menu before anything
	// else, even if the first message is a greeting.
	if len(r.sessions.History(ctx, userID)) == 0 {
		route = "onboarding"
		return r.onboard(ctx, userID)
	}

	// A pending "which city are you in?" question consumes this message as
	// the answer.
	if r.sessions.Flag(ctx, userID, "esperando_ubicacion") {
		route = "followup"
		if err := r.sessions.SaveContext(ctx, userID, "esperando_ubicacion", "false"); err != nil {
			r.logger.Warn("failed to clear location follow-up", "error", err.Error())
		}
		reply = r.locations.ResolveUserCity(ctx, userID, trimmed)
		r.recordReply(ctx, userID, reply)
		return reply
	}

	if err := r.sessions.AppendMessage(ctx, userID, session.RoleUser, message); err != nil {
		r.logger.Warn("failed to record user message", "error", err.Error())
	}

	switch {
	case IsGreeting(message):
		route = "greeting"
		reply = greet()
	case IsFarewell(message):
		route = "farewell"
		reply = farewell()
	case isMenuDigit(trimmed):
		route = "menu"
		reply = r.handleMenuOption(ctx, userID, trimmed)
	default:
		reply, route = r.classifyAndDispatch(ctx, userID, message)
	}

	if reply == "" {
		reply = genericReply
	}
	r.recordReply(ctx, userID, reply)
	return reply
}

func (r *Router) onboard(ctx context.Context, userID string) string {
	if err := r.sessions.SaveContext(ctx, userID, "mostrado_menu_inicial", "true"); err != nil {
		r.logger.Warn("failed to mark onboarding", "error", err.Error())
	}
	r.recordReply(ctx, userID, onboardingMenu)
	return onboardingMenu
}

// classifyAndDispatch asks the external classifier for a routing tag. Timeout
// and transport failures become their literal apology; anything else falls
// back to local keyword responders.
func (r *Router) classifyAndDispatch(ctx context.Context, userID, message string) (string, string) {
	if r.intents == nil {
		return r.respondLocally(ctx, userID, message), "responder"
	}

	resp, err := r.intents.Classify(ctx, message)
	if err != nil {
		var cerr *classifier.Error
		kind := classifier.KindInternal
		if errors.As(err, &cerr) {
			kind = cerr.Kind
		}
		r.metrics.ObserveClassifierFailure(kind.String())

		if kind == classifier.KindTimeout || kind == classifier.KindTransport {
			return classifier.FallbackMessage(err), "classifier_error"
		}
		return r.respondLocally(ctx, userID, message), "responder"
	}

	if !resp.IsTagged() {
		return resp.Text, "classifier"
	}
	return r.dispatchTag(ctx, userID, message, resp), "classifier"
}

func (r *Router) dispatchTag(ctx context.Context, userID, message string, resp classifier.Response) string {
	switch resp.Tag {
	case classifier.TagLocations:
		return r.locations.HandleTagged(ctx, userID, message, resp.Subtype, resp.Param)
	case classifier.TagServices:
		return r.services.HandleTagged(ctx, userID, message, resp.Subtype, resp.Param)
	case classifier.TagSchedule:
		return r.services.Schedule(ctx, userID)
	case classifier.TagRestrictions:
		return r.services.Restrictions(ctx, userID)
	case classifier.TagQuote:
		return r.startQuote(ctx, userID)
	case classifier.TagHumanHandoff:
		return executiveContact
	default:
		return r.respondLocally(ctx, userID, message)
	}
}

func (r *Router) respondLocally(ctx context.Context, userID, message string) string {
	for _, responder := range r.fallbacks {
		if responder.CanHandle(message) {
			return responder.Handle(ctx, userID, message)
		}
	}
	return genericReply
}

func (r *Router) recordReply(ctx context.Context, userID, reply string) {
	if err := r.sessions.AppendMessage(ctx, userID, session.RoleAssistant, reply); err != nil {
		r.logger.Warn("failed to record assistant reply", "error", err.Error())
	}
}

func isMenuDigit(s string) bool {
	switch s {
	case "1", "2", "3", "4", "5", "6":
		return true
	}
	return false
}
