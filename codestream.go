package jxlbox

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const jxlpLastMask = 0x80000000

// ExtractCodestream reassembles the primary codestream from a parsed box
// sequence. The codestream is carried either in a single jxlc box or split
// across jxlp boxes, each prefixed with a 4-byte big-endian part index whose
// high bit marks the final part.
//
// Enforced, matching libjxl: a jxlc box may not repeat or mix with jxlp
// boxes, jxlp indices must be contiguous from 0, and no part may follow the
// final one.
func ExtractCodestream(boxes []Box) ([]byte, error) {
	var (
		out      bytes.Buffer
		seenJxlc bool
		seenJxlp bool
		done     bool
		next     uint32
	)
	for _, b := range boxes {
		switch b.Type {
		case TypeCodestream:
			if seenJxlc {
				return nil, fmt.Errorf("%w: duplicate jxlc box", ErrInvalidBox)
			}
			if seenJxlp {
				return nil, fmt.Errorf("%w: jxlc box mixed with jxlp boxes", ErrInvalidBox)
			}
			seenJxlc = true
			out.Write(b.Payload)

		case TypePartialCodestream:
			if seenJxlc {
				return nil, fmt.Errorf("%w: jxlp box after jxlc box", ErrInvalidBox)
			}
			if done {
				return nil, fmt.Errorf("%w: jxlp box after final part", ErrInvalidBox)
			}
			if len(b.Payload) < 4 {
				return nil, fmt.Errorf("%w: jxlp box smaller than its index field", ErrInvalidBox)
			}
			index := binary.BigEndian.Uint32(b.Payload[:4])
			last := index&jxlpLastMask != 0
			index &^= jxlpLastMask
			if index != next {
				return nil, fmt.Errorf("%w: jxlp index %d, expected %d", ErrInvalidBox, index, next)
			}
			seenJxlp = true
			done = last
			next++
			out.Write(b.Payload[4:])
		}
	}
	if !seenJxlc && !seenJxlp {
		return nil, fmt.Errorf("%w: no codestream box", ErrInvalidBox)
	}
	if seenJxlp && !done {
		return nil, fmt.Errorf("%w: final jxlp part missing", ErrInvalidBox)
	}
	return out.Bytes(), nil
}
