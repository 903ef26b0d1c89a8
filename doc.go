// Package jxlbox implements the JPEG XL container box format in pure Go.
//
// The package covers the box layer only: length-prefixed typed boxes, the
// container signature and ftyp framing, codestream reassembly from jxlc/jxlp
// boxes, and the ISO 21496-1 gain map bundle carried in jhgm boxes. Image
// decoding (entropy coding, transforms, color management) is out of scope;
// codestream payloads are passed through as opaque bytes.
package jxlbox
