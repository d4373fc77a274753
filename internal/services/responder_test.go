package services

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiegoAltamirano13/IA-MARKETING/internal/session"
	"github.com/DiegoAltamirano13/IA-MARKETING/pkg/logging"
)

func newTestResponder(t *testing.T) (*Responder, *session.Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessions := session.NewStore(client, 24*time.Hour, 10*time.Minute, logging.Default())
	return NewResponder(sessions, logging.Default()), sessions
}

func TestCanHandle(t *testing.T) {
	r, _ := newTestResponder(t)

	assert.True(t, r.CanHandle("quiero almacenar mercancía"))
	assert.True(t, r.CanHandle("¿qué horarios de atención tienen?"))
	assert.True(t, r.CanHandle("¿qué está prohibido guardar?"))
	assert.False(t, r.CanHandle("hola"))
}

func TestSchedule(t *testing.T) {
	r, sessions := newTestResponder(t)
	ctx := context.Background()

	reply := r.Schedule(ctx, "u1")
	assert.Contains(t, reply, "Horarios de Atención ARGO")
	assert.Contains(t, reply, "9:00 a 18:00 hrs")
	assert.Contains(t, reply, "Cargas y descargas")
	assert.Contains(t, reply, "¿Necesitas información adicional sobre nuestros servicios?")

	contexts := sessions.Context(ctx, "u1")
	assert.NotEmpty(t, contexts["interes_horarios"].Value)
}

func TestRestrictions(t *testing.T) {
	r, _ := newTestResponder(t)

	reply := r.Restrictions(context.Background(), "u1")
	assert.Contains(t, reply, "Anexo 18")
	assert.Contains(t, reply, "Armas y municiones")
	assert.Contains(t, reply, "Textiles y calzado")
	assert.Contains(t, reply, "mercancía nacional o nacionalizada")
	assert.Contains(t, reply, "Ley Aduanera, art. 123")
	assert.Contains(t, reply, "¿Te interesa conocer más?")
}

func TestHandleTaggedFootwearRule(t *testing.T) {
	r, _ := newTestResponder(t)

	reply := r.HandleTagged(context.Background(), "u1", "puedo almacenar zapatos", "ESPECIFICO", "zapatos deportivos")
	assert.Contains(t, reply, "ALMACENAJE DE CALZADO - ARGO")
	assert.Contains(t, reply, "sí es posible almacenar zapatos deportivos")
	assert.Contains(t, reply, "No podemos recibir")
	assert.Contains(t, reply, "Anexo 18 de las RGCE")
}

func TestHandleTaggedTextileRule(t *testing.T) {
	r, _ := newTestResponder(t)

	reply := r.HandleTagged(context.Background(), "u1", "", "ESPECIFICO", "telas de algodón")
	assert.Contains(t, reply, "ALMACENAJE DE TEXTILES - ARGO")
}

func TestHandleTaggedSpecificSubService(t *testing.T) {
	r, sessions := newTestResponder(t)
	ctx := context.Background()

	reply := r.HandleTagged(ctx, "u1", "", "ESPECIFICO", "depósito fiscal")
	assert.Contains(t, reply, "DEPÓSITO FISCAL - ARGO")
	assert.Contains(t, reply, "difiriendo el pago de impuestos")

	contexts := sessions.Context(ctx, "u1")
	assert.Equal(t, "depósito fiscal", contexts["ultimo_servicio_consultado"].Value)
}

func TestHandleTaggedCategory(t *testing.T) {
	r, _ := newTestResponder(t)
	ctx := context.Background()

	reply := r.HandleTagged(ctx, "u1", "", "LOGISTICA", "")
	assert.Contains(t, reply, "Servicios de Logística ARGO")
	assert.Contains(t, reply, "TRANSPORTE Y DISTRIBUCIÓN")
	assert.Contains(t, reply, "¿Para qué tipo de mercancía o trayecto necesitas servicio de logística?")

	reply = r.HandleTagged(ctx, "u1", "", "GENERAL", "")
	assert.Contains(t, reply, "Servicios de Almacenamiento ARGO")

	reply = r.HandleTagged(ctx, "u1", "", "HORARIOS", "")
	assert.Contains(t, reply, "Horarios de Atención ARGO")
}

func TestHandleLocalDetection(t *testing.T) {
	r, _ := newTestResponder(t)
	ctx := context.Background()

	reply := r.Handle(ctx, "u1", "necesito custodia para mi mercancía")
	// "almacenar"/"guardar" do not appear, so custody keywords win.
	assert.Contains(t, reply, "Servicios de Custodia ARGO")

	reply = r.Handle(ctx, "u1", "¿qué horario tienen los sábados?")
	assert.Contains(t, reply, "Horarios de Atención ARGO")

	reply = r.Handle(ctx, "u1", "algo completamente distinto")
	assert.Contains(t, reply, "Servicios ARGO - Soluciones Integrales de Logística")
}

func TestEveryCategoryAnswerEndsWithQuestion(t *testing.T) {
	r, _ := newTestResponder(t)
	ctx := context.Background()

	for _, cat := range Categories {
		reply := r.HandleTagged(ctx, "u1", "", cat.Key, "")
		require.NotEmpty(t, reply)
		assert.Contains(t, reply, "?", "category %s must end with a follow-up question", cat.Key)
		assert.Contains(t, reply, cat.Closing)
	}
}
