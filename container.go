package jxlbox

import (
	"bytes"
	"errors"
	"fmt"
)

// BuildContainer assembles a container file: the fixed signature box, an
// ftyp box for the given brand, then each box in order. The ftyp content is
// [brand:4][minor_version:4 = 0][compatible_brand:4 = brand].
func BuildContainer(ftypBrand BoxType, boxes []Box) ([]byte, error) {
	var out bytes.Buffer
	out.Write(containerSignature)

	ftyp := make([]byte, 0, 12)
	ftyp = append(ftyp, ftypBrand[:]...)
	ftyp = append(ftyp, 0, 0, 0, 0)
	ftyp = append(ftyp, ftypBrand[:]...)
	enc, err := EncodeBox(TypeFileType, ftyp)
	if err != nil {
		return nil, err
	}
	out.Write(enc)

	for _, b := range boxes {
		enc, err := EncodeBox(b.Type, b.Payload)
		if err != nil {
			return nil, fmt.Errorf("box %q: %w", b.Type, err)
		}
		out.Write(enc)
	}
	return out.Bytes(), nil
}

// EncodeContainer re-serializes a box sequence as parsed by ParseContainer
// (signature and ftyp boxes included). Re-encoding an unmodified parse
// reproduces the original file byte for byte.
func EncodeContainer(boxes []Box) ([]byte, error) {
	var out bytes.Buffer
	for _, b := range boxes {
		enc, err := EncodeBox(b.Type, b.Payload)
		if err != nil {
			return nil, fmt.Errorf("box %q: %w", b.Type, err)
		}
		out.Write(enc)
	}
	return out.Bytes(), nil
}

// ParseContainer decomposes a container file into its box sequence,
// including the leading signature and ftyp boxes. Box payloads are
// subslices of data. Unrecognized box types are preserved opaquely.
//
// Boxes with a zero size field extend to the end of data and are accepted
// only in last position. A trailing partial box header fails with
// ErrTrailingGarbage; zero trailing bytes is not an error.
func ParseContainer(data []byte, optFns ...func(*ParseOptions)) ([]Box, error) {
	var opts ParseOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if len(data) < len(containerSignature) || !bytes.Equal(data[:len(containerSignature)], containerSignature) {
		return nil, ErrBadSignature
	}
	boxes := []Box{{Type: TypeSignature, Payload: data[boxHeaderSize:len(containerSignature)]}}
	pos := len(containerSignature)

	boxType, payload, consumed, err := DecodeBox(data[pos:])
	if err != nil {
		return nil, fmt.Errorf("ftyp: %w", err)
	}
	if boxType != TypeFileType {
		return nil, fmt.Errorf("%w: got %q", ErrMissingFtyp, boxType)
	}
	if err := checkBoxSize(&opts, boxType, payload); err != nil {
		return nil, err
	}
	boxes = append(boxes, Box{Type: boxType, Payload: payload})
	pos += consumed

	for pos < len(data) {
		boxType, payload, consumed, err = DecodeBox(data[pos:])
		if err != nil {
			if errors.Is(err, ErrTruncatedHeader) {
				return nil, fmt.Errorf("%w: %d bytes at offset %d", ErrTrailingGarbage, len(data)-pos, pos)
			}
			return nil, fmt.Errorf("offset %d: %w", pos, err)
		}
		if err := checkBoxSize(&opts, boxType, payload); err != nil {
			return nil, err
		}
		boxes = append(boxes, Box{Type: boxType, Payload: payload})
		pos += consumed
	}
	return boxes, nil
}

func checkBoxSize(opts *ParseOptions, boxType BoxType, payload []byte) error {
	if opts.MaxBoxSize > 0 && uint64(len(payload)) > opts.MaxBoxSize {
		return fmt.Errorf("%w: box %q payload %d exceeds limit %d", ErrSizeOverflow, boxType, len(payload), opts.MaxBoxSize)
	}
	return nil
}

// FindBox returns the first box of the given type.
func FindBox(boxes []Box, t BoxType) (Box, bool) {
	for _, b := range boxes {
		if b.Type == t {
			return b, true
		}
	}
	return Box{}, false
}

// CodestreamLevel returns the level declared by a jxll box, if present.
// Absence means level 5.
func CodestreamLevel(boxes []Box) (level int, found bool) {
	b, ok := FindBox(boxes, TypeLevel)
	if !ok || len(b.Payload) < 1 {
		return 0, false
	}
	return int(b.Payload[0]), true
}
