package jxlbox

import "errors"

// Decode and encode failures are reported through these sentinel values,
// wrapped with context where useful. Match with errors.Is.
var (
	// ErrBadSignature means the input does not start with the 12-byte
	// container signature box.
	ErrBadSignature = errors.New("bad container signature")

	// ErrMissingFtyp means the box following the signature is not ftyp.
	ErrMissingFtyp = errors.New("ftyp box missing")

	// ErrTruncatedHeader means fewer than 8 bytes remain where a box
	// header was expected mid-stream.
	ErrTruncatedHeader = errors.New("truncated box header")

	// ErrTruncatedPayload means a box declares more payload bytes than
	// remain in the input.
	ErrTruncatedPayload = errors.New("truncated box payload")

	// ErrTruncatedBundle means a gain map bundle length prefix points past
	// the end of the payload.
	ErrTruncatedBundle = errors.New("truncated gain map bundle")

	// ErrSizeOverflow means a value does not fit its wire field.
	ErrSizeOverflow = errors.New("size overflows wire field")

	// ErrMetadataTooLarge means gain map metadata exceeds 65535 bytes.
	ErrMetadataTooLarge = errors.New("gain map metadata too large")

	// ErrColorEncodingTooLarge means a color encoding descriptor exceeds
	// 255 bytes.
	ErrColorEncodingTooLarge = errors.New("color encoding too large")

	// ErrUnsupportedVersion means a gain map bundle declares a version
	// other than 0. The wrapped message carries the raw version byte.
	ErrUnsupportedVersion = errors.New("unsupported gain map bundle version")

	// ErrTrailingGarbage means the container ends with a partial box
	// header that cannot be decoded.
	ErrTrailingGarbage = errors.New("trailing garbage after last box")

	// ErrInvalidBox means a box violates container rules beyond framing,
	// such as jxlp ordering or a malformed brob wrapper.
	ErrInvalidBox = errors.New("invalid box")
)
