package classifier

import "errors"

// FailureKind distinguishes why a classification attempt failed.
type FailureKind int

const (
	// KindInternal covers unexpected failures such as empty completions.
	KindInternal FailureKind = iota
	// KindTimeout means the provider did not answer within the deadline.
	KindTimeout
	// KindTransport means the provider could not be reached or rejected the call.
	KindTransport
)

func (k FailureKind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindTransport:
		return "transport"
	default:
		return "internal"
	}
}

// Error wraps a provider failure with its kind so the caller can pick the
// right user-facing message.
type Error struct {
	Kind FailureKind
	Err  error
}

func (e *Error) Error() string {
	return "classifier: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

const (
	timeoutMessage   = "Lo siento, el servicio de inteligencia artificial está tardando en responder. Por favor, intenta nuevamente."
	transportMessage = "Lo siento, hay problemas de conexión con el servicio de inteligencia artificial."
	internalMessage  = "Lo siento, ocurrió un error inesperado al procesar tu solicitud."
)

// FallbackMessage maps a classification failure to the apology shown to the
// user. Unknown errors get the generic internal message.
func FallbackMessage(err error) string {
	var cerr *Error
	if !errors.As(err, &cerr) {
		return internalMessage
	}
	switch cerr.Kind {
	case KindTimeout:
		return timeoutMessage
	case KindTransport:
		return transportMessage
	default:
		return internalMessage
	}
}
