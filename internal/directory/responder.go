package directory

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/DiegoAltamirano13/IA-MARKETING/internal/nlp"
	"github.com/DiegoAltamirano13/IA-MARKETING/internal/session"
	"github.com/DiegoAltamirano13/IA-MARKETING/pkg/logging"
)

// Subtypes emitted by the intent classifier for location queries.
const (
	SubtypeGeneral   = "GENERAL"
	SubtypeSpecific  = "ESPECIFICA"
	SubtypeDetails   = "DETALLES"
	SubtypeReference = "REFERENCIA"
	SubtypeNearby    = "CERCANA"
)

var locationKeywords = []string{
	"ubicacion", "ubicaciones", "donde", "sucursal", "sucursales",
	"almacen", "bodega", "direccion", "maps", "mapa", "google maps",
	"cordoba", "veracruz", "puebla", "mexico", "cdmx",
	"queretaro", "guadalajara", "merida", "monterrey",
	"plaza", "centro", "corporativo",
}

var generalKeywords = []string{"todos", "todas", "listado", "lista", "cuales"}

var nearbyKeywords = []string{"cerca", "cercano", "cercana", "proximo", "próximo"}

var referenceWords = map[string]struct{}{
	"primera": {}, "primero": {}, "segunda": {}, "segundo": {},
	"tercera": {}, "tercero": {}, "cuarta": {}, "cuarto": {},
	"quinta": {}, "quinto": {}, "sexta": {}, "sexto": {},
	"septima": {}, "septimo": {}, "octava": {}, "octavo": {},
	"novena": {}, "noveno": {}, "decima": {}, "decimo": {},
	"ultima": {}, "ultimo": {},
}

// Responder answers location queries from the static roster, the session
// context and, when configured, the operational database.
type Responder struct {
	store    *Store
	sessions *session.Store
	logger   *logging.Logger
}

// NewResponder builds the locations responder. store may be nil when no
// database is configured.
func NewResponder(store *Store, sessions *session.Store, logger *logging.Logger) *Responder {
	if sessions == nil {
		panic("directory: session store is required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Responder{store: store, sessions: sessions, logger: logger}
}

// CanHandle reports whether the message looks like a location query.
func (r *Responder) CanHandle(message string) bool {
	folded := nlp.Fold(message)
	for _, keyword := range locationKeywords {
		if strings.Contains(folded, keyword) {
			return true
		}
	}
	return false
}

// Handle answers a location query by re-detecting the query shape locally.
// Used when the classifier is unavailable.
func (r *Responder) Handle(ctx context.Context, userID, message string) string {
	if err := r.sessions.SaveContext(ctx, userID, "tema_consulta", "ubicaciones"); err != nil {
		r.logger.Warn("failed to save topic context", "error", err.Error())
	}

	folded := nlp.Fold(message)

	for _, keyword := range generalKeywords {
		if strings.Contains(folded, keyword) {
			return r.General(ctx, userID)
		}
	}

	for _, keyword := range nearbyKeywords {
		if strings.Contains(folded, keyword) {
			return r.Nearby(ctx, userID)
		}
	}

	if hasReferenceToken(folded) {
		return r.Reference(ctx, userID, message)
	}

	return r.searchMessage(ctx, userID, message)
}

// HandleTagged answers using the subtype and parameter the classifier
// extracted. Unknown subtypes fall back to local detection.
func (r *Responder) HandleTagged(ctx context.Context, userID, message, subtype, param string) string {
	switch {
	case subtype == SubtypeGeneral:
		return r.General(ctx, userID)
	case subtype == SubtypeSpecific && param != "":
		return r.searchByName(ctx, userID, param)
	case subtype == SubtypeDetails && param != "":
		return r.searchByName(ctx, userID, param)
	case subtype == SubtypeReference && param != "":
		return r.Reference(ctx, userID, param)
	case subtype == SubtypeNearby:
		return r.Nearby(ctx, userID)
	default:
		return r.Handle(ctx, userID, message)
	}
}

// General lists every location grouped by plaza and remembers the roster in
// the session so follow-up ordinals ("la primera") can resolve against it.
func (r *Responder) General(ctx context.Context, userID string) string {
	var b strings.Builder
	b.WriteString("📍 *UBICACIONES ARGO ALMACENADORA*\n\n")
	b.WriteString("Tenemos presencia en las siguientes plazas:\n\n")

	names := make([]string, 0, len(Locations))
	for _, plaza := range Plazas {
		b.WriteString(fmt.Sprintf("🏢 *%s*\n", plaza))
		for _, loc := range ByPlaza(plaza) {
			b.WriteString(fmt.Sprintf("• %s\n", loc.Name))
			names = append(names, loc.Name)
		}
		b.WriteString("\n")
	}

	if err := r.sessions.SaveLocations(ctx, userID, names); err != nil {
		r.logger.Warn("failed to save location roster", "error", err.Error())
	}

	b.WriteString("¿Te interesa alguna ubicación en específico? Puedo darte todos los detalles.")
	return b.String()
}

// Nearby asks the user for their city and arms the follow-up flag so the
// next message is treated as the answer.
func (r *Responder) Nearby(ctx context.Context, userID string) string {
	if err := r.sessions.SaveContext(ctx, userID, "esperando_ubicacion", "true"); err != nil {
		r.logger.Warn("failed to arm location follow-up", "error", err.Error())
	}
	return "Para recomendarte la ubicación más cercana, ¿podrías decirme en qué ciudad o estado te encuentras?"
}

// Reference resolves an ordinal ("la primera", "la 3", "la última") against
// the roster saved by the last general listing.
func (r *Responder) Reference(ctx context.Context, userID, reference string) string {
	names := r.sessions.Locations(ctx, userID)
	if len(names) == 0 {
		return "No tengo ubicaciones recientes en contexto. Escribe 'todas las ubicaciones' para ver el listado completo."
	}

	resolved, ok := r.sessions.ResolveReference(ctx, userID, reference)
	if !ok {
		return "No entendí la referencia. ¿Podrías ser más específico?"
	}

	for _, loc := range Locations {
		if nlp.Fold(loc.Name) == nlp.Fold(resolved) {
			return renderDetails(loc)
		}
	}
	return "Ubicación no encontrada."
}

// ResolveUserCity handles the answer to the nearby follow-up question.
func (r *Responder) ResolveUserCity(ctx context.Context, userID, city string) string {
	foldedCity := nlp.Fold(city)

	seen := map[string]struct{}{}
	var found []Location
	add := func(key string) {
		if _, ok := seen[key]; ok {
			return
		}
		if loc, ok := Find(key); ok {
			seen[key] = struct{}{}
			found = append(found, loc)
		}
	}

	for indexCity, keys := range cityIndex {
		if strings.Contains(nlp.Fold(indexCity), foldedCity) {
			for _, key := range keys {
				add(key)
			}
		}
	}
	for _, loc := range Locations {
		if strings.Contains(nlp.Fold(loc.City), foldedCity) {
			add(loc.Key)
		}
	}

	switch len(found) {
	case 0:
		return fmt.Sprintf("No tenemos ubicaciones en %s. Te recomiendo consultar nuestras ubicaciones disponibles.", city)
	case 1:
		return renderDetails(found[0])
	default:
		return renderCityGroup(city, found)
	}
}

// searchMessage finds a location mentioned anywhere in the message.
func (r *Responder) searchMessage(ctx context.Context, userID, message string) string {
	folded := nlp.Fold(message)

	for _, loc := range Locations {
		if strings.Contains(folded, nlp.Fold(loc.Key)) || strings.Contains(folded, nlp.Fold(loc.Name)) {
			return renderDetails(loc)
		}
	}

	for city, keys := range cityIndex {
		if !strings.Contains(folded, nlp.Fold(city)) {
			continue
		}
		if len(keys) == 1 {
			if loc, ok := Find(keys[0]); ok {
				return renderDetails(loc)
			}
		}
		var group []Location
		for _, key := range keys {
			if loc, ok := Find(key); ok {
				group = append(group, loc)
			}
		}
		return renderCityGroup(city, group)
	}

	return helpText()
}

// searchByName finds a location by approximate name, consulting the database
// when the static roster has no match.
func (r *Responder) searchByName(ctx context.Context, userID, name string) string {
	foldedName := nlp.Fold(name)

	for _, loc := range Locations {
		if nlp.Fold(loc.Key) == foldedName {
			return renderDetails(loc)
		}
	}

	// City names resolve through the index first, so "Veracruz" lists the
	// warehouses in that city instead of whichever roster entry happens to
	// mention it.
	for city, keys := range cityIndex {
		if nlp.Fold(city) != foldedName {
			continue
		}
		if len(keys) == 1 {
			if loc, ok := Find(keys[0]); ok {
				return renderDetails(loc)
			}
		}
		var group []Location
		for _, key := range keys {
			if loc, ok := Find(key); ok {
				group = append(group, loc)
			}
		}
		return renderCityGroup(city, group)
	}

	for _, loc := range Locations {
		if strings.Contains(nlp.Fold(loc.Key), foldedName) ||
			strings.Contains(nlp.Fold(loc.Name), foldedName) ||
			strings.Contains(nlp.Fold(loc.City), foldedName) {
			return renderDetails(loc)
		}
	}

	if r.store != nil {
		matches, err := r.store.SearchLocations(ctx, name)
		if err != nil {
			r.logger.Warn("database location search failed", "error", err.Error())
		} else if len(matches) == 1 {
			return renderDetails(matches[0])
		} else if len(matches) > 1 {
			return renderCityGroup(name, matches)
		}
	}

	return fmt.Sprintf("No encontré la ubicación '%s'. ¿Podrías intentar con otro nombre?", name)
}

func hasReferenceToken(folded string) bool {
	for _, field := range strings.Fields(folded) {
		if _, ok := referenceWords[field]; ok {
			return true
		}
		if n, err := strconv.Atoi(field); err == nil && n > 0 {
			return true
		}
	}
	return false
}

func renderDetails(loc Location) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📍 *%s*\n\n", loc.Name))
	b.WriteString(fmt.Sprintf("🏢 *Plaza:* %s\n", loc.Plaza))
	b.WriteString(fmt.Sprintf("📮 *Dirección:* %s\n", loc.Address))
	b.WriteString(fmt.Sprintf("📦 *C.P.:* %s\n", loc.PostalCode))
	b.WriteString(fmt.Sprintf("🏙️ *Ciudad:* %s\n", loc.City))
	if loc.Phone != "" {
		b.WriteString(fmt.Sprintf("📞 *Teléfono:* %s\n", loc.Phone))
	}
	if loc.Hours != "" {
		b.WriteString(fmt.Sprintf("🕘 *Horario:* %s\n", loc.Hours))
	}
	b.WriteString(fmt.Sprintf("🗺️ *Google Maps:* %s\n\n", loc.MapsURL))
	b.WriteString("¿Necesitas información de otra ubicación?")
	return b.String()
}

func renderCityGroup(city string, locations []Location) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📍 *UBICACIONES EN %s*\n\n", strings.ToUpper(city)))
	for _, loc := range locations {
		b.WriteString(fmt.Sprintf("🏢 *%s*\n", loc.Name))
		b.WriteString(fmt.Sprintf("📮 %s\n", loc.Address))
		b.WriteString(fmt.Sprintf("🗺️ %s\n\n", loc.MapsURL))
	}
	b.WriteString("¿Te interesa alguna en específico?")
	return b.String()
}

func helpText() string {
	return "📍 *UBICACIONES ARGO*\n\n" +
		"Puedo ayudarte a encontrar nuestras ubicaciones. Puedes preguntar por:\n\n" +
		"• 'Ubicaciones en [ciudad]' (ej: Ubicaciones en Veracruz)\n" +
		"• 'Almacén [nombre]' (ej: Almacén Ulúa)\n" +
		"• 'Todas las ubicaciones'\n" +
		"• 'Ubicación más cercana'\n\n" +
		"¿En qué te puedo ayudar?"
}
