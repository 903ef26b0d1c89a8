package jxlbox

import (
	"encoding/binary"
	"fmt"
)

// EncodeBox serializes one box: [size:4 BE][type:4][payload]. The size field
// counts the 8-byte header, so payloads longer than 0xFFFFFFFF-8 do not fit
// and fail with ErrSizeOverflow. No alignment or padding is introduced.
func EncodeBox(boxType BoxType, payload []byte) ([]byte, error) {
	if uint64(len(payload)) > 0xFFFFFFFF-boxHeaderSize {
		return nil, fmt.Errorf("%w: %d byte payload", ErrSizeOverflow, len(payload))
	}
	out := make([]byte, boxHeaderSize+len(payload))
	binary.BigEndian.PutUint32(out[0:4], uint32(len(payload)+boxHeaderSize))
	copy(out[4:8], boxType[:])
	copy(out[boxHeaderSize:], payload)
	return out, nil
}

// EncodeBoxExtended serializes a box using the extended 16-byte header
// (size field 1 followed by a 64-bit size). The short form suffices for any
// payload EncodeBox accepts; this form exists for boxes past 4 GiB.
func EncodeBoxExtended(boxType BoxType, payload []byte) []byte {
	out := make([]byte, 16+len(payload))
	binary.BigEndian.PutUint32(out[0:4], 1)
	copy(out[4:8], boxType[:])
	binary.BigEndian.PutUint64(out[8:16], uint64(len(payload))+16)
	copy(out[16:], payload)
	return out
}

// DecodeBox decodes the box at the start of data and reports how many bytes
// it occupied. The returned payload is a subslice of data, not a copy.
//
// A size field of 0 means the payload extends to the end of data (valid only
// for the last box of a stream). A size field of 1 switches to the extended
// 16-byte header with a 64-bit size.
func DecodeBox(data []byte) (boxType BoxType, payload []byte, consumed int, err error) {
	if len(data) < boxHeaderSize {
		return BoxType{}, nil, 0, fmt.Errorf("%w: %d bytes remain", ErrTruncatedHeader, len(data))
	}
	size := uint64(binary.BigEndian.Uint32(data[0:4]))
	copy(boxType[:], data[4:8])

	headerSize := uint64(boxHeaderSize)
	switch {
	case size == 0:
		return boxType, data[boxHeaderSize:], len(data), nil
	case size == 1:
		if len(data) < 16 {
			return BoxType{}, nil, 0, fmt.Errorf("%w: extended header needs 16 bytes, %d remain", ErrTruncatedHeader, len(data))
		}
		size = binary.BigEndian.Uint64(data[8:16])
		headerSize = 16
	}
	if size < headerSize {
		return BoxType{}, nil, 0, fmt.Errorf("%w: size %d smaller than %d byte header", ErrInvalidBox, size, headerSize)
	}
	if size > uint64(len(data)) {
		return BoxType{}, nil, 0, fmt.Errorf("%w: box %q declares %d bytes, %d remain", ErrTruncatedPayload, boxType, size, len(data))
	}
	return boxType, data[headerSize:size], int(size), nil
}
