package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/DiegoAltamirano13/IA-MARKETING/internal/nlp"
	"github.com/DiegoAltamirano13/IA-MARKETING/internal/session"
	"github.com/DiegoAltamirano13/IA-MARKETING/pkg/logging"
)

// subtypeAliases maps classifier subtypes to catalog keys. GENERAL and
// ESPECIFICO default to almacenamiento, the line most queries are about.
var subtypeAliases = map[string]string{
	"ESPECIFICO":        "almacenamiento",
	"ESPECIFICA":        "almacenamiento",
	"GENERAL":           "almacenamiento",
	"ALMACENAMIENTO":    "almacenamiento",
	"LOGISTICA":         "logistica",
	"ADUANAS":           "aduanas",
	"CUSTODIA":          "custodia",
	"ACONDICIONAMIENTO": "acondicionamiento",
	"HABILITACION":      "habilitacion",
	"HORARIOS":          "horarios",
	"RESTRICCIONES":     "restricciones",
}

// Responder answers service catalog, schedule and restriction queries.
type Responder struct {
	sessions *session.Store
	logger   *logging.Logger
}

// NewResponder builds the services responder.
func NewResponder(sessions *session.Store, logger *logging.Logger) *Responder {
	if sessions == nil {
		panic("services: session store is required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Responder{sessions: sessions, logger: logger}
}

// CanHandle reports whether the message mentions any service keyword.
func (r *Responder) CanHandle(message string) bool {
	folded := nlp.Fold(message)
	for _, entry := range categoryKeywords {
		for _, word := range entry.Words {
			if strings.Contains(folded, word) {
				return true
			}
		}
	}
	return false
}

// Handle answers a service query by keyword detection. Used when the
// classifier is unavailable.
func (r *Responder) Handle(ctx context.Context, userID, message string) string {
	folded := nlp.Fold(message)

	for _, entry := range categoryKeywords {
		for _, word := range entry.Words {
			if !strings.Contains(folded, word) {
				continue
			}
			switch entry.Key {
			case "horarios":
				return r.Schedule(ctx, userID)
			case "restricciones":
				return r.Restrictions(ctx, userID)
			default:
				return r.category(ctx, userID, entry.Key, "")
			}
		}
	}

	return overview()
}

// HandleTagged answers using the subtype and parameter the classifier
// extracted. Unknown subtypes fall back to local detection.
func (r *Responder) HandleTagged(ctx context.Context, userID, message, subtype, param string) string {
	upper := strings.ToUpper(strings.TrimSpace(subtype))

	if (upper == "ESPECIFICO" || upper == "ESPECIFICA") && param != "" {
		r.saveInterest(ctx, userID, "ultimo_servicio_consultado", param)
		return r.specific(ctx, userID, param)
	}

	key, ok := subtypeAliases[upper]
	if !ok {
		key = strings.ToLower(subtype)
	}

	switch key {
	case "horarios":
		return r.Schedule(ctx, userID)
	case "restricciones":
		return r.Restrictions(ctx, userID)
	}

	if _, ok := categoryByKey[key]; ok {
		consulted := param
		if consulted == "" {
			consulted = key
		}
		r.saveInterest(ctx, userID, "ultimo_servicio_consultado", consulted)
		return r.category(ctx, userID, key, param)
	}

	return r.Handle(ctx, userID, message)
}

// Schedule renders the business hours block.
func (r *Responder) Schedule(ctx context.Context, userID string) string {
	var b strings.Builder
	b.WriteString("**Horarios de Atención ARGO**\n\n")
	b.WriteString("📞 **Atención a clientes:**\n")
	b.WriteString("• Lunes a viernes: 9:00 a 18:00 hrs\n")
	b.WriteString("• Sábados: 9:00 a 13:00 hrs\n\n")
	b.WriteString("🚚 **Cargas y descargas:**\n")
	b.WriteString("• Lunes a viernes: 9:00 a 16:00 hrs\n")
	b.WriteString("• Sábados: 9:00 a 12:00 hrs\n\n")
	b.WriteString("¿Necesitas información adicional sobre nuestros servicios?")

	r.saveInterest(ctx, userID, "interes_horarios", "usuario preguntando sobre horarios de atención")
	return b.String()
}

// Restrictions renders the Anexo 18 list of goods barred from Depósito
// Fiscal, including the nationalized textiles and footwear note.
func (r *Responder) Restrictions(ctx context.Context, userID string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("**%s**\n\n", restrictionsTitle))
	b.WriteString(restrictionsIntro + "\n\n")
	b.WriteString("**Mercancías NO permitidas en Depósito Fiscal:**\n")
	for _, item := range restrictedGoods {
		b.WriteString(fmt.Sprintf("• %s\n", item))
	}
	b.WriteString(fmt.Sprintf("\n💡 **Nota importante:** %s\n\n", textilesNote))
	b.WriteString(fmt.Sprintf("**Fundamento legal:** %s\n\n", legalBasis))
	b.WriteString("Para mercancías nacionales o nacionalizadas (impuestos pagados), contamos con servicios de almacenaje nacional. ¿Te interesa conocer más?")

	r.saveInterest(ctx, userID, "interes_restricciones", "usuario preguntando sobre mercancías no susceptibles")
	return b.String()
}

// specific answers a question about one concrete product or offering. Footwear
// and textiles get the legal answer about nationalized goods; anything else is
// matched against the sub-service catalog.
func (r *Responder) specific(ctx context.Context, userID, product string) string {
	folded := nlp.Fold(product)

	if matchesAny(folded, footwearWords) || matchesAny(folded, textileWords) {
		return footwearTextileAnswer(product)
	}

	for _, cat := range Categories {
		for _, sub := range cat.Types {
			if strings.Contains(nlp.Fold(sub.Name), folded) {
				r.saveInterest(ctx, userID, "interes_"+cat.Key,
					fmt.Sprintf("usuario preguntando sobre %s", sub.Name))
				return fmt.Sprintf("**%s - ARGO**\n\n%s\n\n%s",
					strings.ToUpper(sub.Name), sub.Description, cat.Closing)
			}
		}
	}

	return overview()
}

// category renders one service line. A non-empty specific narrows the answer
// to a single offering when it matches.
func (r *Responder) category(ctx context.Context, userID, key, specific string) string {
	cat, ok := categoryByKey[key]
	if !ok {
		return overview()
	}

	if specific != "" {
		folded := nlp.Fold(specific)

		if key == "almacenamiento" && (matchesAny(folded, footwearWords) || matchesAny(folded, textileWords)) {
			return footwearTextileAnswer(specific)
		}

		for _, sub := range cat.Types {
			if strings.Contains(nlp.Fold(sub.Name), folded) {
				r.saveInterest(ctx, userID, "interes_"+key,
					fmt.Sprintf("usuario preguntando sobre %s", sub.Name))
				return fmt.Sprintf("**%s - ARGO**\n\n%s\n\n%s",
					strings.ToUpper(sub.Name), sub.Description, cat.Closing)
			}
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("**%s**\n\n", cat.Name))
	b.WriteString(cat.Description + "\n\n")
	for _, sub := range cat.Types {
		b.WriteString(fmt.Sprintf("• **%s**: %s\n", strings.ToUpper(sub.Name), sub.Description))
	}
	b.WriteString("\n" + cat.Closing)

	r.saveInterest(ctx, userID, "interes_"+key,
		fmt.Sprintf("usuario preguntando sobre servicios de %s", key))
	return b.String()
}

func (r *Responder) saveInterest(ctx context.Context, userID, key, value string) {
	if err := r.sessions.SaveContext(ctx, userID, key, value); err != nil {
		r.logger.Warn("failed to save service interest", "key", key, "error", err.Error())
	}
}

func matchesAny(folded string, words []string) bool {
	for _, word := range words {
		if strings.Contains(folded, word) {
			return true
		}
	}
	return false
}

// footwearTextileAnswer explains the Anexo 18 rule: footwear and textiles are
// storable only as national or nationalized goods.
func footwearTextileAnswer(product string) string {
	folded := nlp.Fold(product)

	kind := "textiles y calzado"
	if matchesAny(folded, []string{"zapato", "calzado", "tenis", "bota", "sandalia"}) {
		kind = "calzado"
	} else if matchesAny(folded, []string{"textil", "tela", "ropa", "prenda", "vestimenta"}) {
		kind = "textiles"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("**ALMACENAJE DE %s - ARGO**\n\n", strings.ToUpper(kind)))
	b.WriteString(fmt.Sprintf("Le informo que sí es posible almacenar %s en nuestras instalaciones. ", product))
	b.WriteString("Como Almacén General de Depósito autorizado por la SHCP, podemos recibir:\n\n")
	b.WriteString("✅ **Mercancía nacional o nacionalizada**: Una vez pagados los impuestos de importación\n")
	b.WriteString("✅ **Bajo el régimen de almacenaje nacional**: Con todos los beneficios de seguridad y custodia\n\n")
	b.WriteString("**Importante**: Para textiles y calzado de importación, es necesario:\n")
	b.WriteString("• Que los impuestos de importación estén pagados\n")
	b.WriteString("• Contar con la documentación aduanal completa\n")
	b.WriteString("• La mercancía debe estar nacionalizada\n\n")
	b.WriteString("**No podemos recibir** textiles o calzado bajo régimen de Depósito Fiscal (diferimiento de impuestos) ")
	b.WriteString("según lo establecido en el Anexo 18 de las RGCE.\n\n")
	b.WriteString("¿Le interesa conocer más sobre nuestros servicios de almacenaje nacional o necesita cotización?")
	return b.String()
}

func overview() string {
	var b strings.Builder
	b.WriteString("**Servicios ARGO - Soluciones Integrales de Logística**\n\n")
	b.WriteString("Ofrecemos servicios especializados en:\n\n")
	for _, line := range overviewLines {
		b.WriteString(fmt.Sprintf("• %s\n", line))
	}
	b.WriteString("\n¿En qué servicio estás interesado o sobre cuál te gustaría más información?")
	return b.String()
}
