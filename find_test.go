package gokml_test

import (
	"testing"

	gokml "github.com/reoring/gokml"
	"github.com/reoring/gokml/geo"
	"github.com/reoring/gokml/kml"
	"github.com/reoring/gokml/views"
)

func sampleTree(t *testing.T) *kml.KML {
	t.Helper()
	p1, err := geo.NewPoint([]float64{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	p2, err := geo.NewPoint([]float64{3, 4})
	if err != nil {
		t.Fatal(err)
	}
	pm1 := &kml.Placemark{Geometry: p1}
	pm1.Name = gokml.Ptr("alpha")
	pm1.View = &views.LookAt{Range: gokml.Ptr(100.0)}
	pm2 := &kml.Placemark{Geometry: p2}
	pm2.Name = gokml.Ptr("beta")
	folder := &kml.Folder{Features: []gokml.Object{pm2}}
	folder.Name = gokml.Ptr("inner")
	doc := &kml.Document{Features: []gokml.Object{pm1, folder}}
	return kml.New(doc)
}

func TestFindAllByType(t *testing.T) {
	root := sampleTree(t)
	var names []string
	for o := range gokml.FindAll(root, gokml.Query{Type: gokml.OfType[*kml.Placemark]()}) {
		names = append(names, *o.(*kml.Placemark).Name)
	}
	// Depth-first document order: pm1 before the folder's pm2.
	if len(names) != 2 || names[0] != "alpha" || names[1] != "beta" {
		t.Errorf("names = %v, want [alpha beta]", names)
	}
}

func TestFindAllDescendsIntoGeometry(t *testing.T) {
	root := sampleTree(t)
	count := 0
	for range gokml.FindAll(root, gokml.Query{Type: gokml.OfType[*geo.Point]()}) {
		count++
	}
	if count != 2 {
		t.Errorf("found %d points, want 2", count)
	}
}

func TestFindReachesSharedFeatureFields(t *testing.T) {
	root := sampleTree(t)
	o, ok := gokml.Find(root, gokml.Query{Type: gokml.OfType[*views.LookAt]()})
	if !ok {
		t.Fatal("view carried by a feature not found")
	}
	if la := o.(*views.LookAt); la.Range == nil || *la.Range != 100 {
		t.Errorf("range = %v", la.Range)
	}
}

func TestFindByAttr(t *testing.T) {
	root := sampleTree(t)
	o, ok := gokml.Find(root, gokml.Query{Attrs: map[string]any{"Name": "beta"}})
	if !ok {
		t.Fatal("no match")
	}
	if _, isPM := o.(*kml.Placemark); !isPM {
		t.Errorf("match %T, want *kml.Placemark", o)
	}
}

func TestFindNoMatch(t *testing.T) {
	root := sampleTree(t)
	if _, ok := gokml.Find(root, gokml.Query{Attrs: map[string]any{"Name": "missing"}}); ok {
		t.Error("matched a name that does not exist")
	}
}

func TestFindAllIsRestartable(t *testing.T) {
	root := sampleTree(t)
	seq := gokml.FindAll(root, gokml.Query{Type: gokml.OfType[*kml.Placemark]()})
	first, second := 0, 0
	for range seq {
		first++
	}
	for range seq {
		second++
	}
	if first != second {
		t.Errorf("second pass yielded %d, first %d", second, first)
	}
}
