package jxlbox

// BoxType is the 4-byte tag of a container box. Tags are conventionally
// ASCII but any byte values are preserved verbatim.
type BoxType [4]byte

func (t BoxType) String() string { return string(t[:]) }

// TypeOf builds a BoxType from a 4-character string.
func TypeOf(s string) BoxType {
	var t BoxType
	copy(t[:], s)
	return t
}

// Box types defined by the JPEG XL container specification.
var (
	TypeSignature         = BoxType{'J', 'X', 'L', ' '}
	TypeFileType          = BoxType{'f', 't', 'y', 'p'}
	TypeCodestream        = BoxType{'j', 'x', 'l', 'c'}
	TypePartialCodestream = BoxType{'j', 'x', 'l', 'p'}
	TypeGainMap           = BoxType{'j', 'h', 'g', 'm'}
	TypeFrameIndex        = BoxType{'j', 'x', 'l', 'i'}
	TypeLevel             = BoxType{'j', 'x', 'l', 'l'}
	TypeBrotli            = BoxType{'b', 'r', 'o', 'b'}
	TypeJPEGRecon         = BoxType{'j', 'b', 'r', 'd'}
	TypeExif              = BoxType{'E', 'x', 'i', 'f'}
	TypeXML               = BoxType{'x', 'm', 'l', ' '}
)

// BrandJXL is the ftyp brand of a JPEG XL container.
var BrandJXL = BoxType{'j', 'x', 'l', ' '}

const boxHeaderSize = 8

// containerSignature is the fixed first box of a container file:
// a 12-byte box of type "JXL " carrying the 0D 0A 87 0A magic.
var containerSignature = []byte{
	0x00, 0x00, 0x00, 0x0C,
	'J', 'X', 'L', ' ',
	0x0D, 0x0A, 0x87, 0x0A,
}

// codestreamSignature marks a bare (container-less) codestream.
var codestreamSignature = []byte{0xFF, 0x0A}

// gainMapBundleVersion is the only jhgm bundle version this package encodes
// or decodes.
const gainMapBundleVersion = 0
