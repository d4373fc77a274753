package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTaggedResponses(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		tag     Tag
		subtype string
		param   string
	}{
		{
			name: "general locations",
			raw:  "UBICACIONES: GENERAL|",
			tag:  TagLocations, subtype: "GENERAL",
		},
		{
			name: "specific location with parameter",
			raw:  "UBICACIONES: ESPECIFICA|Veracruz",
			tag:  TagLocations, subtype: "ESPECIFICA", param: "Veracruz",
		},
		{
			name: "trailing prose after second pipe is discarded",
			raw:  "UBICACIONES: ESPECIFICA|Veracruz|además le comento que...",
			tag:  TagLocations, subtype: "ESPECIFICA", param: "Veracruz",
		},
		{
			name: "services with detail",
			raw:  "SERVICIOS: ESPECIFICO|zapatos deportivos",
			tag:  TagServices, subtype: "ESPECIFICO", param: "zapatos deportivos",
		},
		{
			name: "schedule has empty subtype",
			raw:  "HORARIOS: |",
			tag:  TagSchedule,
		},
		{
			name: "restrictions",
			raw:  "RESTRICCIONES: |",
			tag:  TagRestrictions,
		},
		{
			name: "quote",
			raw:  "COTIZACION: |",
			tag:  TagQuote,
		},
		{
			name: "human handoff",
			raw:  "ATENCION_CLIENTE: EJECUTIVO|",
			tag:  TagHumanHandoff, subtype: "EJECUTIVO",
		},
		{
			name: "surrounding whitespace",
			raw:  "  UBICACIONES: CERCANA|  ",
			tag:  TagLocations, subtype: "CERCANA",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Parse(tc.raw)
			assert.Equal(t, tc.tag, got.Tag)
			assert.Equal(t, tc.subtype, got.Subtype)
			assert.Equal(t, tc.param, got.Param)
			assert.True(t, got.IsTagged())
			assert.Empty(t, got.Text)
		})
	}
}

func TestParsePlainText(t *testing.T) {
	got := Parse("Le comento que contamos con más de 34 años de experiencia.")
	assert.Equal(t, TagPlainText, got.Tag)
	assert.False(t, got.IsTagged())
	assert.Equal(t, "Le comento que contamos con más de 34 años de experiencia.", got.Text)

	// A tag name in the middle of a sentence is not a wire tag.
	got = Parse("Nuestros SERVICIOS: incluyen almacenaje")
	assert.Equal(t, TagPlainText, got.Tag)
}
