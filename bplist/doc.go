// Package bplist implements decoding of Apple's binary property list
// format, version "bplist00". Other property list variants (XML, OpenStep)
// are not supported.
// The mapping between plist objects and Go values is described in the
// documentation for Decode.
package bplist
