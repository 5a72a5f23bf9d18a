// Package times implements the KML time primitives.
//
// KML dateTime values follow XML Schema time and can be expressed at four
// precisions: gYear, gYearMonth, date, and dateTime. The precision is part
// of the value: a gYear timestamp never serializes a month or a day.
package times

import (
	"errors"
	"fmt"
	"time"

	gokml "github.com/reoring/gokml"
)

// Resolution is the precision a KML dateTime is significant at.
type Resolution string

const (
	Year      Resolution = "gYear"
	YearMonth Resolution = "gYearMonth"
	Date      Resolution = "date"
	DateTime  Resolution = "dateTime"
)

// KmlDateTime is an instant tagged with the resolution it was expressed at.
type KmlDateTime struct {
	Time       time.Time
	Resolution Resolution
}

// New pairs an instant with a resolution; an empty resolution means full
// dateTime precision.
func New(t time.Time, r Resolution) KmlDateTime {
	if r == "" {
		r = DateTime
	}
	return KmlDateTime{Time: t, Resolution: r}
}

// datePatterns are tried most precise first; the first structural match
// decides both the instant and the resolution.
var datePatterns = []struct {
	layout     string
	resolution Resolution
}{
	{time.RFC3339, DateTime},
	{"2006-01-02T15:04:05", DateTime},
	{"2006-01-02", Date},
	{"20060102", Date},
	{"2006-01", YearMonth},
	{"200601", YearMonth},
	{"2006", Year},
}

// Parse reads a KML dateTime at whichever resolution the text carries.
func Parse(s string) (KmlDateTime, error) {
	for _, p := range datePatterns {
		if t, err := time.Parse(p.layout, s); err == nil {
			return KmlDateTime{Time: t, Resolution: p.resolution}, nil
		}
	}
	return KmlDateTime{}, fmt.Errorf("invalid dateTime %q", s)
}

// String emits exactly the digits the resolution implies.
func (d KmlDateTime) String() string {
	switch d.Resolution {
	case Year:
		return d.Time.Format("2006")
	case YearMonth:
		return d.Time.Format("2006-01")
	case Date:
		return d.Time.Format("2006-01-02")
	default:
		return d.Time.Format(time.RFC3339)
	}
}

// Equal compares instants only. Two values at the same instant but
// different resolutions are equal; resolution is an output concern.
func (d KmlDateTime) Equal(other KmlDateTime) bool {
	return d.Time.Equal(other.Time)
}

// Codec coerces KmlDateTime values for registry items.
var Codec = gokml.Codec[KmlDateTime]{
	Parse:  Parse,
	Format: func(v KmlDateTime, _ int) string { return v.String() },
}

// TimeStamp represents a single moment in time.
type TimeStamp struct {
	gokml.BaseObject
	Timestamp *KmlDateTime
}

// TimeStampType describes TimeStamp for registration and dispatch.
var TimeStampType = &gokml.TypeInfo{
	Name: "TimeStamp",
	NSID: "kml",
	New:  func() gokml.Object { return &TimeStamp{} },
}

func (t *TimeStamp) TypeInfo() *gokml.TypeInfo { return TimeStampType }

// TimeSpan represents an extent in time bounded by begin and end.
type TimeSpan struct {
	gokml.BaseObject
	Begin *KmlDateTime
	End   *KmlDateTime
}

// TimeSpanType describes TimeSpan for registration and dispatch.
var TimeSpanType = &gokml.TypeInfo{
	Name: "TimeSpan",
	NSID: "kml",
	New:  func() gokml.Object { return &TimeSpan{} },
}

func (t *TimeSpan) TypeInfo() *gokml.TypeInfo { return TimeSpanType }

// Check enforces the structural invariant shared by hand-built and parsed
// values: at least one of begin and end must be set. Ordering is not
// enforced here; see CheckOrder.
func (t *TimeSpan) Check() error {
	if t.Begin == nil && t.End == nil {
		return errors.New("timespan: either begin, end or both must be set")
	}
	return nil
}

// CheckOrder is the opt-in validation that begin does not follow end.
// KML itself leaves unordered spans unspecified, so parsing accepts them.
func (t *TimeSpan) CheckOrder() error {
	if t.Begin != nil && t.End != nil && t.Begin.Time.After(t.End.Time) {
		return fmt.Errorf("timespan: begin %s after end %s", t.Begin, t.End)
	}
	return nil
}

func init() {
	gokml.RegisterType(TimeStampType)
	gokml.RegisterType(TimeSpanType)

	get, set := gokml.ChildText(
		func(o gokml.Object) **KmlDateTime { return &o.(*TimeStamp).Timestamp },
		Codec,
	)
	gokml.Register(TimeStampType, gokml.Item{
		Attr: "timestamp", Node: "when", NSIDs: []string{"kml"},
		Get: get, Set: set, Required: true,
	})

	get, set = gokml.ChildText(
		func(o gokml.Object) **KmlDateTime { return &o.(*TimeSpan).Begin },
		Codec,
	)
	gokml.Register(TimeSpanType, gokml.Item{
		Attr: "begin", Node: "begin", NSIDs: []string{"kml"},
		Get: get, Set: set,
	})

	get, set = gokml.ChildText(
		func(o gokml.Object) **KmlDateTime { return &o.(*TimeSpan).End },
		Codec,
	)
	gokml.Register(TimeSpanType, gokml.Item{
		Attr: "end", Node: "end", NSIDs: []string{"kml"},
		Get: get, Set: set,
	})
}
