package classifier

import "strings"

// Tag identifies the intent category the external classifier detected.
type Tag string

const (
	TagLocations    Tag = "UBICACIONES"
	TagServices     Tag = "SERVICIOS"
	TagSchedule     Tag = "HORARIOS"
	TagRestrictions Tag = "RESTRICCIONES"
	TagQuote        Tag = "COTIZACION"
	TagHumanHandoff Tag = "ATENCION_CLIENTE"

	// TagPlainText marks a response that is already a final natural-language
	// answer rather than a routing instruction.
	TagPlainText Tag = "PLAIN_TEXT"
)

// knownTags lists the wire prefixes the classifier is instructed to emit, in
// match order.
var knownTags = []Tag{
	TagLocations,
	TagServices,
	TagSchedule,
	TagRestrictions,
	TagQuote,
	TagHumanHandoff,
}

// Response is the decoded result of a classifier call. Exactly one of two
// shapes applies: a tagged routing instruction (Tag, Subtype, Param) or plain
// text (Tag == TagPlainText, Text set).
type Response struct {
	Tag     Tag
	Subtype string
	Param   string
	Text    string
}

// IsTagged reports whether the response is a routing instruction.
func (r Response) IsTagged() bool {
	return r.Tag != TagPlainText
}

// Parse decodes the classifier's raw output line. Recognized lines follow
// "TAG: subtype|parameter"; anything after a second "|" is discarded because
// the external service sometimes appends prose despite the format contract.
// Unrecognized output becomes a PLAIN_TEXT response wrapping the verbatim text.
func Parse(raw string) Response {
	trimmed := strings.TrimSpace(raw)

	for _, tag := range knownTags {
		prefix := string(tag) + ":"
		if !strings.HasPrefix(trimmed, prefix) {
			continue
		}

		parts := strings.Split(trimmed, "|")
		subtype := strings.TrimSpace(strings.TrimPrefix(parts[0], prefix))

		var param string
		if len(parts) > 1 {
			param = strings.TrimSpace(parts[1])
		}

		return Response{Tag: tag, Subtype: subtype, Param: param}
	}

	return Response{Tag: TagPlainText, Text: trimmed}
}
