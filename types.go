package jxlbox

// Box is a single container box: a 4-byte type tag plus its payload.
// Boxes produced by ParseContainer reference the input buffer; copy the
// payload before mutating or discarding the source.
type Box struct {
	Type    BoxType
	Payload []byte
}

// BitstreamKind describes the outer structure of a JPEG XL bitstream.
type BitstreamKind int

const (
	// KindUnknown means the prefix is too short to decide.
	KindUnknown BitstreamKind = iota
	// KindBareCodestream is a naked codestream without box structure.
	KindBareCodestream
	// KindContainer is a box-structured container file.
	KindContainer
	// KindInvalid matches neither signature.
	KindInvalid
)

func (k BitstreamKind) String() string {
	switch k {
	case KindBareCodestream:
		return "bare codestream"
	case KindContainer:
		return "container"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// ParseOptions bounds the work done by ParseContainer.
type ParseOptions struct {
	// MaxBoxSize rejects any box declaring a payload larger than this
	// many bytes. Zero means no limit beyond the input length.
	MaxBoxSize uint64
}

// SplitResult holds the pieces of a container taken apart by Split.
type SplitResult struct {
	// Codestream is the primary image codestream, reassembled from the
	// jxlc box or the jxlp box series.
	Codestream []byte
	// GainMap is the decoded jhgm bundle, nil when absent.
	GainMap *GainMapBundle
	// Aux holds every other box in original order, excluding signature,
	// ftyp, codestream and gain map boxes.
	Aux []Box

	brand BoxType
}
