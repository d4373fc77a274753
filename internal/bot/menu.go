package bot

import "context"

// onboardingMenu greets a first-time user and offers the entry options.
const onboardingMenu = "¡Hola! Soy el Asistente IA de ARGO Almacenadora, ¿en qué puedo apoyarte?\n\n" +
	"Por favor selecciona una opción:\n" +
	"1. Información sobre infraestructura, servicios y ubicaciones\n" +
	"2. Cotización de servicios\n" +
	"3. Otro"

const infoSummary = "**INFORMACIÓN SOBRE INFRAESTRUCTURA, SERVICIOS Y UBICACIONES**\n\n" +
	"En ARGO Almacenadora contamos con:\n\n" +
	"🏭 **Infraestructura:**\n" +
	"• Almacenes modernos y seguros\n" +
	"• Sistemas de vigilancia 24/7\n" +
	"• Control de clima y humedad\n" +
	"• Estructuras anti-sísmicas\n\n" +
	"📦 **Servicios:**\n" +
	"• Almacenamiento general y especializado\n" +
	"• Logística y distribución\n" +
	"• Servicios aduanales\n" +
	"• Custodia de mercancías\n\n" +
	"📍 **Ubicaciones:**\n" +
	"• Central Córdoba\n" +
	"• Plaza Golfo\n" +
	"• Plaza Puebla\n" +
	"• Plaza México\n" +
	"• Plaza Bajío\n" +
	"• Plaza Occidente\n" +
	"• Plaza Península\n" +
	"• Plaza Noreste\n\n" +
	"¿Sobre qué aspecto específico te gustaría conocer más?"

const quoteQuestionnaire = "**COTIZACIÓN DE SERVICIOS**\n\n" +
	"Para proporcionarte una cotización precisa, necesito conocer:\n\n" +
	"1. **Tipo de mercancía:** ¿Qué producto deseas almacenar?\n" +
	"2. **Volumen aproximado:** ¿Cuánto espacio necesitas? (m³ o pallets)\n" +
	"3. **Tiempo de almacenaje:** ¿Por cuánto tiempo?\n" +
	"4. **Ubicación preferida:** ¿En qué plaza te interesa?\n\n" +
	"Por favor, proporciona estos detalles o un ejecutivo se pondrá en contacto contigo."

const executiveContact = "**CONEXIÓN CON EJECUTIVO**\n\n" +
	"Para atender tu solicitud de manera personalizada, te conectaremos con uno de nuestros ejecutivos especializados.\n\n" +
	"📞 **Contacto directo:**\n" +
	"• Teléfono: 555-123-4567\n" +
	"• Email: ejecutivos@argo.com.mx\n" +
	"• Horario: Lunes a Viernes 9:00 AM - 6:00 PM\n\n" +
	"Un ejecutivo se pondrá en contacto contigo a la brevedad para brindarte la atención personalizada que necesitas."

const otherQueries = "**OTRAS CONSULTAS**\n\n" +
	"Para cualquier otra consulta no cubierta en las opciones anteriores, " +
	"por favor describe tu necesidad específica y te ayudaré en lo posible.\n\n" +
	"También puedes contactarnos directamente:\n" +
	"📞 Teléfono: 555-123-4567\n" +
	"📧 Email: contacto@argo.com.mx\n" +
	"🌐 Web: www.argo.com.mx\n\n" +
	"¿En qué más puedo ayudarte?"

const invalidOption = "Opción no válida. Por favor selecciona una opción del 1 al 6."

// handleMenuOption dispatches a digit the user typed after seeing the
// onboarding menu. Options 3 through 5 route to a human executive.
func (r *Router) handleMenuOption(ctx context.Context, userID, option string) string {
	switch option {
	case "1":
		return infoSummary
	case "2":
		return r.startQuote(ctx, userID)
	case "3", "4", "5":
		return executiveContact
	case "6":
		return otherQueries
	default:
		return invalidOption
	}
}

// startQuote arms the quotation flag and asks the intake questions.
func (r *Router) startQuote(ctx context.Context, userID string) string {
	if err := r.sessions.SaveContext(ctx, userID, "solicitando_cotizacion", "true"); err != nil {
		r.logger.Warn("failed to arm quotation flag", "error", err.Error())
	}
	return quoteQuestionnaire
}
