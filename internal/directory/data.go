package directory

import "github.com/DiegoAltamirano13/IA-MARKETING/internal/nlp"

// Location is one ARGO warehouse or corporate office.
type Location struct {
	Key        string
	Name       string
	Address    string
	PostalCode string
	City       string
	MapsURL    string
	Plaza      string
	Lat        float64
	Lng        float64
	Phone      string
	Hours      string
}

// Locations is the canonical roster in presentation order. Ordinal references
// ("la primera", "la última") resolve against slices saved from this order.
var Locations = []Location{
	{
		Key:        "CENTRAL CÓRDOBA",
		Name:       "CORPORATIVO CÓRDOBA",
		Address:    "Calle 21 S/N Av. 3 y 5, Colonia Centro",
		PostalCode: "94500",
		City:       "Córdoba, Veracruz",
		MapsURL:    "https://maps.app.goo.gl/fAsXgFYyR4Sxo42W7",
		Plaza:      "CENTRAL CÓRDOBA",
		Lat:        18.8842, Lng: -96.9256,
	},
	{
		Key:        "PEÑUELA",
		Name:       "ALMACÉN PEÑUELA",
		Address:    "Av. Hidalgo S/N Carretera Federal México - Veracruz, Colonia La Florida",
		PostalCode: "94945",
		City:       "Peñuela de Amatlán de los Reyes, Veracruz",
		MapsURL:    "https://maps.app.goo.gl/4sQPtbXikrTHmyd79",
		Plaza:      "CENTRAL CÓRDOBA",
		Lat:        18.8475, Lng: -96.8912,
	},
	{
		Key:        "ATOYAQUILLO",
		Name:       "ALMACÉN ATOYAQUILLO",
		Address:    "Parque Industrial Córdoba - Amatlán, manzana 2, lotes 12, 13 y 14",
		PostalCode: "94950",
		City:       "Paraje Nuevo de Amatlán de los Reyes, Veracruz",
		MapsURL:    "https://maps.app.goo.gl/VDpZjfSWNBLVgQZv7",
		Plaza:      "CENTRAL CÓRDOBA",
		Lat:        18.8350, Lng: -96.8750,
	},
	{
		Key:        "ULÚA",
		Name:       "ALMACÉN ULÚA",
		Address:    "Boulevard San Juan de Ulúa #3 - Esquina Morelos Norte, Colonia Manuel Contreras",
		PostalCode: "91899",
		City:       "Veracruz, Veracruz",
		MapsURL:    "https://maps.app.goo.gl/bMypUhqrdsa3835r5",
		Plaza:      "PLAZA GOLFO",
		Lat:        19.2022, Lng: -96.1344,
	},
	{
		Key:        "ACACIAS",
		Name:       "ALMACÉN ACACIAS",
		Address:    "Av. Acacias Lote 3, Manzana 18 - Bodega 1, Cd. Industrial Bruno Pagliai",
		PostalCode: "91697",
		City:       "Veracruz, Veracruz",
		MapsURL:    "https://maps.app.goo.gl/cLdBtAUGch8LPMng9",
		Plaza:      "PLAZA GOLFO",
		Lat:        19.1583, Lng: -96.1889,
	},
	{
		Key:        "CUAUTLANCINGO",
		Name:       "ALMACÉN CUAUTLANCINGO",
		Address:    "Calle Enrique #2, Colonia San Lorenzo Almecatla",
		PostalCode: "72710",
		City:       "Cuautlancingo, Puebla",
		MapsURL:    "https://maps.app.goo.gl/xhpXxt3k1oGLjwKU8",
		Plaza:      "PLAZA PUEBLA",
		Lat:        19.0867, Lng: -98.2739,
	},
	{
		Key:        "TABLA HONDA",
		Name:       "ALMACÉN TABLA HONDA",
		Address:    "Calle Roble #3, manzana 12, Fracc. Industrial Tabla Honda",
		PostalCode: "54126",
		City:       "Tlalnepantla, Estado de México",
		MapsURL:    "https://maps.app.goo.gl/qPuFkbtmtMinD8Bz9",
		Plaza:      "PLAZA MÉXICO",
		Lat:        19.5400, Lng: -99.1917,
	},
	{
		Key:        "CEYLAN",
		Name:       "ALMACÉN CEYLAN",
		Address:    "Av. Ceylán #489, Colonia Industrial Vallejo",
		PostalCode: "02300",
		City:       "Alcaldía Azcapotzalco, CDMX",
		MapsURL:    "https://maps.app.goo.gl/TRFiY7iP1bheX7tT9",
		Plaza:      "PLAZA MÉXICO",
		Lat:        19.4917, Lng: -99.1833,
	},
	{
		Key:        "PANTACO",
		Name:       "ALMACÉN PANTACO",
		Address:    "Cerrada de Acalotenco #237, Colonia San Sebastián",
		PostalCode: "02040",
		City:       "Alcaldía Azcapotzalco, CDMX",
		MapsURL:    "https://maps.app.goo.gl/Xkxroi34yU7unv3WA",
		Plaza:      "PLAZA MÉXICO",
		Lat:        19.4867, Lng: -99.1783,
	},
	{
		Key:        "QUERÉTARO",
		Name:       "ALMACÉN QUERÉTARO",
		Address:    "Acceso III #52, bodegas 14, 16 y 17, conjunto Victoria II, Parque Industrial Benito Juárez",
		PostalCode: "76100",
		City:       "Querétaro, Querétaro",
		MapsURL:    "https://maps.app.goo.gl/tXd24dETgGEMFLaA8",
		Plaza:      "PLAZA BAJÍO",
		Lat:        20.5931, Lng: -100.3928,
	},
	{
		Key:        "GUADALAJARA",
		Name:       "ALMACÉN GUADALAJARA",
		Address:    "Av. Las Palmas #130, Colonia Rincón de Agua Azul",
		PostalCode: "44467",
		City:       "Guadalajara, Jalisco",
		MapsURL:    "https://maps.app.goo.gl/gwZzh1CSCAo5BiVK7",
		Plaza:      "PLAZA OCCIDENTE",
		Lat:        20.6597, Lng: -103.3494,
	},
	{
		Key:        "MÉRIDA",
		Name:       "ALMACÉN MÉRIDA",
		Address:    "Tablaje Catastral #16415 'B', Ctra. Costera del Golfo Kanasín, Colonia Kanasín",
		PostalCode: "97370",
		City:       "Kanasín, Yucatán",
		MapsURL:    "https://maps.app.goo.gl/DVbnvmvabWh93LSC9",
		Plaza:      "PLAZA PENÍNSULA",
		Lat:        20.9675, Lng: -89.5925,
	},
	{
		Key:        "MONTERREY",
		Name:       "ALMACÉN MONTERREY",
		Address:    "Av. Sendero Divisorio #510, interior I y J, Colonia Balcones de Anáhuac",
		PostalCode: "66422",
		City:       "San Nicolás de los Garza, Nuevo León",
		MapsURL:    "https://maps.app.goo.gl/MEVSCBRTo6uCzSGQ8",
		Plaza:      "PLAZA NORESTE",
		Lat:        25.6866, Lng: -100.3161,
	},
}

// Plazas lists the commercial regions in presentation order.
var Plazas = []string{
	"CENTRAL CÓRDOBA", "PLAZA GOLFO", "PLAZA PUEBLA",
	"PLAZA MÉXICO", "PLAZA BAJÍO", "PLAZA OCCIDENTE",
	"PLAZA PENÍNSULA", "PLAZA NORESTE",
}

// cityIndex maps city and state names to location keys.
var cityIndex = map[string][]string{
	"córdoba":          {"CENTRAL CÓRDOBA", "PEÑUELA", "ATOYAQUILLO"},
	"veracruz":         {"ULÚA", "ACACIAS"},
	"puebla":           {"CUAUTLANCINGO"},
	"méxico":           {"TABLA HONDA", "CEYLAN", "PANTACO"},
	"cdmx":             {"CEYLAN", "PANTACO"},
	"ciudad de méxico": {"CEYLAN", "PANTACO"},
	"querétaro":        {"QUERÉTARO"},
	"guadalajara":      {"GUADALAJARA"},
	"jalisco":          {"GUADALAJARA"},
	"mérida":           {"MÉRIDA"},
	"yucatán":          {"MÉRIDA"},
	"monterrey":        {"MONTERREY"},
	"nuevo león":       {"MONTERREY"},
}

// Find returns the location whose key matches, ignoring case and accents.
func Find(key string) (Location, bool) {
	folded := nlp.Fold(key)
	for _, loc := range Locations {
		if nlp.Fold(loc.Key) == folded {
			return loc, true
		}
	}
	return Location{}, false
}

// ByPlaza returns the locations belonging to a plaza, in roster order.
func ByPlaza(plaza string) []Location {
	var out []Location
	for _, loc := range Locations {
		if loc.Plaza == plaza {
			out = append(out, loc)
		}
	}
	return out
}
