package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	gokml "github.com/reoring/gokml"
	"github.com/reoring/gokml/geo"
	"github.com/reoring/gokml/kml"

	_ "github.com/reoring/gokml/data"
	_ "github.com/reoring/gokml/styles"
	_ "github.com/reoring/gokml/views"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "validate":
		validateCmd(os.Args[2:])
	case "format":
		formatCmd(os.Args[2:])
	case "geojson":
		geojsonCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "gokml CLI\n\nUsage:\n  gokml validate [-schema ogckml22.xsd] file.kml\n  gokml format [-precision n] file.kml\n  gokml geojson file.kml")
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var schema string
	fs.StringVar(&schema, "schema", "", "XML Schema file to validate against before parsing")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	opts := gokml.ParseOptions{Strict: true}
	if schema != "" {
		v, err := gokml.NewSchemaValidator(os.DirFS(filepath.Dir(schema)), filepath.Base(schema))
		if err != nil {
			fatal(err)
		}
		opts.Validator = v
	}
	if _, err := parseFile(fs.Arg(0), opts); err != nil {
		fatal(err)
	}
	fmt.Println("ok")
}

func formatCmd(args []string) {
	fs := flag.NewFlagSet("format", flag.ExitOnError)
	var precision int
	fs.IntVar(&precision, "precision", 0, "decimal places for coordinates (0 = default)")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	obj, err := parseFile(fs.Arg(0), gokml.ParseOptions{})
	if err != nil {
		fatal(err)
	}
	out, err := gokml.ToString(obj, gokml.SerializeOptions{Prettyprint: true, Precision: precision})
	if err != nil {
		fatal(err)
	}
	fmt.Print(out)
}

func geojsonCmd(args []string) {
	fs := flag.NewFlagSet("geojson", flag.ExitOnError)
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	obj, err := parseFile(fs.Arg(0), gokml.ParseOptions{})
	if err != nil {
		fatal(err)
	}
	var parts []geo.Geometry
	for o := range gokml.FindAll(obj, gokml.Query{Type: gokml.OfType[*kml.Placemark]()}) {
		if g := o.(*kml.Placemark).Geometry; g != nil {
			parts = append(parts, g)
		}
	}
	if len(parts) == 0 {
		fatal(fmt.Errorf("no placemark geometry in document"))
	}
	var out []byte
	if len(parts) == 1 {
		out, err = geo.AsGeoJSON(parts[0])
	} else {
		var m *geo.MultiGeometry
		m, err = geo.NewMultiGeometry(parts...)
		if err == nil {
			out, err = geo.AsGeoJSON(m)
		}
	}
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(out))
}

func parseFile(path string, opts gokml.ParseOptions) (gokml.Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return gokml.Parse(f, opts)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
