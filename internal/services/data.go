package services

// SubService is one concrete offering inside a category.
type SubService struct {
	Name        string
	Description string
}

// Category groups the offerings of one service line. Types keeps
// presentation order.
type Category struct {
	Key         string
	Name        string
	Description string
	Types       []SubService
	Closing     string
}

// Categories is the service catalog in presentation order.
var Categories = []Category{
	{
		Key:         "almacenamiento",
		Name:        "Servicios de Almacenamiento ARGO",
		Description: "Ofrecemos diferentes tipos de almacenamiento:",
		Types: []SubService{
			{"depósito fiscal", "Almacenaje directo de aduana a nuestros almacenes, difiriendo el pago de impuestos por mercancías importadas y pagando según se retire la mercancía de nuestras instalaciones."},
			{"almacenaje nacional", "Administración y control de inventarios para el óptimo resguardo de mercancías nacionales o nacionalizadas, procurando la total coordinación y eficiencia en cada proyecto."},
			{"general", "Almacenamiento general para mercancías diversas"},
			{"controlado", "Almacenamiento con control de temperatura y humedad"},
			{"peligroso", "Almacenamiento para materiales peligrosos"},
			{"valor", "Almacenamiento de alto valor y máxima seguridad"},
		},
		Closing: "¿Qué tipo de mercancía necesitas almacenar o sobre qué servicio te gustaría más información?",
	},
	{
		Key:         "logistica",
		Name:        "Servicios de Logística ARGO",
		Description: "Ofrecemos soluciones integrales de transporte y distribución:",
		Types: []SubService{
			{"Transporte y Distribución", "Área especializada en logística del transporte terrestre, que ofrece alternativas de costo-servicio de acuerdo al traslado de mercancías."},
			{"Distribución Nacional", "Coordinación completa de la cadena de suministro para distribución en territorio nacional."},
			{"Logística Internacional", "Manejo de transporte y coordinación para operaciones de importación y exportación."},
		},
		Closing: "¿Para qué tipo de mercancía o trayecto necesitas servicio de logística?",
	},
	{
		Key:         "aduanas",
		Name:        "Servicios Aduanales ARGO",
		Description: "Contamos con expertise en procedimientos de importación/exportación bajo el marco de la Ley Aduanera:",
		Types: []SubService{
			{"Depósito Fiscal", "Almacenaje directo de aduana a nuestros almacenes, difiriendo el pago de impuestos por mercancías importadas"},
			{"Gestión de Pedimentos", "Manejo completo de documentación aduanal"},
			{"Asesoría en Comercio Exterior", "Consultoría especializada en normativa aduanera"},
		},
		Closing: "¿Necesitas apoyo con algún procedimiento de importación o exportación específico?",
	},
	{
		Key:         "custodia",
		Name:        "Servicios de Custodia ARGO",
		Description: "Nuestros servicios cumplen con la Ley General de Títulos y Operaciones de Crédito:",
		Types: []SubService{
			{"Custodia Física", "Resguardo seguro de mercancías con sistemas de vigilancia avanzados"},
			{"Créditos Prendarios", "Expedición de Certificados de Depósito para garantía crediticia"},
			{"Seguridad Integral", "Monitoreo 24/7 y protocolos de seguridad certificados"},
		},
		Closing: "¿Qué tipo de custodia o protección necesitas para tus mercancías?",
	},
	{
		Key:         "acondicionamiento",
		Name:        "Servicios de Acondicionamiento ARGO",
		Description: "Ofrecemos servicios de valor agregado para tu mercancía:",
		Types: []SubService{
			{"Etiquetado y Marbetes", "Colocación de etiquetas y marbetes personalizados"},
			{"Armado de Pedidos", "Preparación y empaque de pedidos según especificaciones"},
			{"Paletizado y Emplayado", "Preparación de mercancía para transporte seguro"},
			{"Consolidación", "Agrupación de mercancías para optimización de espacio"},
			{"Desconsolidación", "Separación y clasificación de mercancías consolidadas"},
		},
		Closing: "¿Qué tipo de acondicionamiento necesitas para tus productos?",
	},
	{
		Key:         "habilitacion",
		Name:        "Habilitación Fiscal y Nacional ARGO",
		Description: "Hacemos extensivas nuestras facultades como Almacén General de Depósito:",
		Types: []SubService{
			{"Habilitación Fiscal", "Convierte tus instalaciones en Almacén Fiscal para recibir mercancías importadas directo de aduana, con diferimiento del pago de impuestos hasta por 24 meses"},
			{"Habilitación Nacional", "Facultad para expedir Certificados de Depósito para la obtención de Créditos Prendarios"},
		},
		Closing: "¿Te interesa conocer más sobre cómo habilitar tus instalaciones con ARGO?",
	},
}

// categoryByKey indexes Categories for direct lookup.
var categoryByKey = func() map[string]Category {
	m := make(map[string]Category, len(Categories))
	for _, c := range Categories {
		m[c.Key] = c
	}
	return m
}()

// categoryKeywords drives local detection when the classifier is down. The
// horarios and restricciones entries route to their dedicated handlers.
var categoryKeywords = []struct {
	Key   string
	Words []string
}{
	{"almacenamiento", []string{"almacenar", "guardar", "deposito", "bodega", "almacen", "inventario", "resguardo"}},
	{"logistica", []string{"logistica", "transporte", "distribucion", "entregas", "traslado", "terrestre"}},
	{"aduanas", []string{"aduanal", "importacion", "exportacion", "pedimento", "fiscal", "impuestos", "aduanera"}},
	{"custodia", []string{"custodia", "vigilancia", "seguridad", "proteccion", "creditos", "prendarios"}},
	{"acondicionamiento", []string{"acondicionamiento", "etiquetas", "marbetes", "armado", "pedidos", "paquetes",
		"paletizado", "emplayado", "empacado", "consolidacion", "desconsolidacion"}},
	{"habilitacion", []string{"habilitacion", "facultades", "instalaciones", "clientes", "extensivas"}},
	{"horarios", []string{"horario", "horarios", "atencion", "horas", "abierto", "cerrado",
		"cargas", "descargas", "lunes", "martes", "miercoles", "jueves", "viernes", "sabado"}},
	{"restricciones", []string{"prohibido", "no permitido", "no almacenar", "mercancia peligrosa", "peligrosa",
		"restriccion", "restringido", "armas", "explosivos", "radioactivo", "nuclear",
		"quimicos", "preciosos", "joyeria", "relojes", "cigarros", "textiles", "calzado",
		"vehiculos", "no susceptible", "deposito fiscal"}},
}

var footwearWords = []string{
	"zapato", "zapatos", "calzado", "tenis", "sneakers", "deportivos",
	"botas", "botines", "sandalia", "sandalias", "tacones", "zapatilla",
	"zapatillas", "plataforma", "mocasin", "mocasines", "chancla", "chanclas",
	"alpargata", "alpargatas", "huarache", "huaraches", "zapato deportivo",
	"calzado deportivo", "zapato formal", "calzado infantil",
}

var textileWords = []string{
	"textil", "textiles", "tela", "telas", "tejido", "tejidos", "prenda",
	"prendas", "ropa", "vestimenta", "indumentaria", "moda", "confeccion",
	"costura", "hilado", "hilo", "algodon", "poliester", "nylon", "seda",
	"lana", "lino", "jeans", "mezclilla", "pantalon", "pantalones", "camisa",
	"camisas", "blusa", "blusas", "vestido", "vestidos", "falda", "faldas",
	"sueter", "sueteres", "chaqueta", "chaquetas", "abrigo", "abrigos",
}

// restrictedGoods is the Anexo 18 list of goods barred from Depósito Fiscal.
var restrictedGoods = []string{
	"Armas y municiones",
	"Explosivos",
	"Materiales radioactivos/radiactivos, nucleares y contaminantes",
	"Precursores químicos y químicos esenciales",
	"Piedras y metales preciosos (diamantes, rubíes, zafiros, esmeraldas, perlas y joyería con metales/piedras preciosas)",
	"Relojes",
	"Artículos de jade, coral, marfil y ámbar",
	"Cigarros (Sector 9 del Anexo 10)",
	"Mercancías del Anexo 29 (listado específico de control)",
	"Azúcar de caña (partida 17.01 de la TIGIE)",
	"Textiles y calzado (capítulos 50 al 64 de la TIGIE)",
	"Juguetes de las partidas 95.03 y 95.04 cuando los introduzcan residentes en el extranjero",
	"Vehículos (con excepciones muy puntuales para ciertas fracciones/partidas)",
}

const (
	restrictionsTitle = "Mercancías No Susceptibles de Almacenaje en Depósito Fiscal"
	restrictionsIntro = "En México, las mercancías que NO pueden destinarse al régimen de Depósito Fiscal están listadas por la autoridad en el Anexo 18 de las RGCE (fundamento del art. 123 de la Ley Aduanera)."
	textilesNote      = "En el caso de los textiles y calzado es posible almacenar en ARGO pero como mercancía nacional o nacionalizada, es decir, una vez pagados los impuestos."
	legalBasis        = "Ley Aduanera, art. 123: faculta a la autoridad para señalar por reglas las mercancías no permitidas en Depósito Fiscal. Anexo 18 de las RGCE: contiene el listado detallado."
)

// overviewLines feed the catch-all catalog answer.
var overviewLines = []string{
	"**Almacenamiento**: Depósito Fiscal, Almacenaje Nacional, controlado y de alto valor",
	"**Logística**: Transporte, distribución y gestión de cadena de suministro",
	"**Servicios Aduanales**: Expertise en importación/exportación y depósito fiscal",
	"**Custodia**: Seguridad avanzada y créditos prendarios",
	"**Acondicionamiento**: Etiquetado, armado de pedidos y preparación de mercancía",
	"**Habilitación**: Fiscal y nacional para tus propias instalaciones",
}
