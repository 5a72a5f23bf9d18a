// Package enums holds the enumerated KML field values.
//
// Values parse with relaxed, case-insensitive matching: third-party
// producers disagree on capitalization, and rejecting "clamptoground"
// outright would fail documents Google Earth accepts.
package enums

import (
	"fmt"
	"log/slog"
	"strings"
)

// parseRelaxed matches s against the known values, falling back to a
// case-insensitive comparison with a warning.
func parseRelaxed[T ~string](s string, known []T) (T, error) {
	for _, k := range known {
		if s == string(k) {
			return k, nil
		}
	}
	for _, k := range known {
		if strings.EqualFold(s, string(k)) {
			slog.Warn("case-insensitive enum match", "value", s, "matched", string(k))
			return k, nil
		}
	}
	var zero T
	values := make([]string, len(known))
	for i, k := range known {
		values[i] = string(k)
	}
	return zero, fmt.Errorf("unknown value %q, known values are %s", s, strings.Join(values, ", "))
}

// AltitudeMode specifies how altitude components in coordinates are
// interpreted. ClampToSeaFloor and RelativeToSeaFloor belong to the gx
// extension namespace.
type AltitudeMode string

const (
	ClampToGround      AltitudeMode = "clampToGround"
	RelativeToGround   AltitudeMode = "relativeToGround"
	Absolute           AltitudeMode = "absolute"
	ClampToSeaFloor    AltitudeMode = "clampToSeaFloor"
	RelativeToSeaFloor AltitudeMode = "relativeToSeaFloor"
)

func ParseAltitudeMode(s string) (AltitudeMode, error) {
	return parseRelaxed(s, []AltitudeMode{
		ClampToGround, RelativeToGround, Absolute, ClampToSeaFloor, RelativeToSeaFloor,
	})
}

// NSID returns the namespace id the mode serializes under.
func (m AltitudeMode) NSID() string {
	if m == ClampToSeaFloor || m == RelativeToSeaFloor {
		return "gx"
	}
	return "kml"
}

// ColorMode specifies how a style color is applied.
type ColorMode string

const (
	ColorModeNormal ColorMode = "normal"
	ColorModeRandom ColorMode = "random"
)

func ParseColorMode(s string) (ColorMode, error) {
	return parseRelaxed(s, []ColorMode{ColorModeNormal, ColorModeRandom})
}

// DisplayMode controls BalloonStyle visibility.
type DisplayMode string

const (
	DisplayModeDefault DisplayMode = "default"
	DisplayModeHide    DisplayMode = "hide"
)

func ParseDisplayMode(s string) (DisplayMode, error) {
	return parseRelaxed(s, []DisplayMode{DisplayModeDefault, DisplayModeHide})
}

// RefreshMode specifies how a link is refreshed.
type RefreshMode string

const (
	OnChange   RefreshMode = "onChange"
	OnInterval RefreshMode = "onInterval"
	OnExpire   RefreshMode = "onExpire"
)

func ParseRefreshMode(s string) (RefreshMode, error) {
	return parseRelaxed(s, []RefreshMode{OnChange, OnInterval, OnExpire})
}

// ViewRefreshMode specifies how a link is refreshed when the camera changes.
type ViewRefreshMode string

const (
	Never     ViewRefreshMode = "never"
	OnStop    ViewRefreshMode = "onStop"
	OnRequest ViewRefreshMode = "onRequest"
	OnRegion  ViewRefreshMode = "onRegion"
)

func ParseViewRefreshMode(s string) (ViewRefreshMode, error) {
	return parseRelaxed(s, []ViewRefreshMode{Never, OnStop, OnRequest, OnRegion})
}

// PairKey selects the style state a StyleMap pair applies to.
type PairKey string

const (
	PairNormal    PairKey = "normal"
	PairHighlight PairKey = "highlight"
)

func ParsePairKey(s string) (PairKey, error) {
	return parseRelaxed(s, []PairKey{PairNormal, PairHighlight})
}

// DataType types a SimpleField in extended data.
type DataType string

const (
	TypeString DataType = "string"
	TypeInt    DataType = "int"
	TypeUint   DataType = "uint"
	TypeShort  DataType = "short"
	TypeUshort DataType = "ushort"
	TypeFloat  DataType = "float"
	TypeDouble DataType = "double"
	TypeBool   DataType = "bool"
)

func ParseDataType(s string) (DataType, error) {
	return parseRelaxed(s, []DataType{
		TypeString, TypeInt, TypeUint, TypeShort, TypeUshort, TypeFloat, TypeDouble, TypeBool,
	})
}
