package bot

import (
	"math/rand"
	"strings"

	"github.com/DiegoAltamirano13/IA-MARKETING/internal/nlp"
)

var greetingWords = []string{
	"hola", "buenos dias", "buenas tardes", "buenas noches", "saludos", "hi", "hello",
}

var farewellWords = []string{
	"adios", "hasta luego", "nos vemos", "gracias", "bye", "goodbye",
}

// GreetingReplies are the greeting templates, one of which is picked at
// random per turn.
var GreetingReplies = []string{
	"¡Hola! 👋 ¿En qué puedo ayudarte hoy?",
	"¡Buen día! 🌟 Estoy aquí para asistirte",
	"¡Hola! 😊 ¿Cómo puedo ayudarte?",
}

// FarewellReplies are the farewell templates.
var FarewellReplies = []string{
	"¡Hasta luego! 👋 Fue un placer ayudarte",
	"¡Que tengas un excelente día! 🌟",
	"¡Nos vemos! 😊 Estoy aquí cuando me necesites",
}

// IsGreeting reports whether the message contains a greeting, ignoring case
// and accents.
func IsGreeting(message string) bool {
	folded := nlp.Fold(message)
	for _, word := range greetingWords {
		if strings.Contains(folded, word) {
			return true
		}
	}
	return false
}

// IsFarewell reports whether the message contains a farewell. Checked after
// IsGreeting, so "hola y gracias" counts as a greeting.
func IsFarewell(message string) bool {
	folded := nlp.Fold(message)
	for _, word := range farewellWords {
		if strings.Contains(folded, word) {
			return true
		}
	}
	return false
}

func greet() string {
	return GreetingReplies[rand.Intn(len(GreetingReplies))]
}

func farewell() string {
	return FarewellReplies[rand.Intn(len(FarewellReplies))]
}
