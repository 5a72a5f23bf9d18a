package gokml

// Namespaces of the KML 2.2 vocabulary, in Clark notation. Serialization
// declares each of these on the root element when the document uses it.
const (
	KMLNS  = "{http://www.opengis.net/kml/2.2}"
	ATOMNS = "{http://www.w3.org/2005/Atom}"
	GXNS   = "{http://www.google.com/kml/ext/2.2}"
	XALNS  = "{urn:oasis:names:tc:ciq:xsdschema:xAL:2.0}"
)

// DefaultNameSpaces maps namespace ids as used in registry items to their
// Clark namespaces.
var DefaultNameSpaces = map[string]string{
	"kml":  KMLNS,
	"atom": ATOMNS,
	"gx":   GXNS,
	"xal":  XALNS,
	"":     "",
}
