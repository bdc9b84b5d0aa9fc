// Package descriptor reads human-writable window handle descriptions.
//
// A descriptor is a YAML record naming a platform and the numeric values
// of its handle fields. Descriptors exist for fixtures, bug reports, and
// the handles inspector; they are a debug format, not the interchange
// format. Real producers and consumers exchange the in-process structs
// in the root package, and nothing about descriptor YAML is part of that
// contract.
//
// A fixture file is a list of records:
//
//	- platform: xlib
//	  window: 0x3a0000f
//	  display: 0x7f2a40001000
//	- platform: web
//	  id: 3
//
// Numeric fields accept decimal or 0x-prefixed hex, quoted or not.
//
// Handles materialized from descriptors contain synthetic pointer
// values. They are for inspection and classification only and must never
// be asserted with TrustRawWindowHandle or handed to a native API.
package descriptor
