// Package stormfile serializes storm tracks to the line-oriented wire format
// consumed by the surge-forcing model, and parses them back.
//
// The format is versioned through its identifier token. Version geoclaw-1:
//
//	geoclaw-1 <sample-count> <epoch RFC3339>
//	s deg deg m/s m Pa m
//	<elapsed> <lon> <lat> <vmax> <rmw> <pc> <rout>
//	...
//
// One whitespace-delimited row per sample, time-ascending, numbers in
// scientific notation with 8 significant digits. Column order and units are
// part of the contract: any change requires a new format identifier.
package stormfile

import "errors"

// FormatGeoClaw identifies version 1 of the GeoClaw-style storm file layout.
const FormatGeoClaw = "geoclaw-1"

// unitsGeoClaw is the fixed units declaration for the seven geoclaw-1
// columns: elapsed time, eye longitude, eye latitude, max wind speed,
// max wind radius, central pressure, storm radius.
const unitsGeoClaw = "s deg deg m/s m Pa m"

// ErrUnsupportedFormat reports an unrecognized format identifier, on either
// the write or the read side.
var ErrUnsupportedFormat = errors.New("unsupported storm file format")

// Supported reports whether a format identifier has a registered writer.
func Supported(formatID string) bool {
	_, ok := writers[formatID]
	return ok
}
