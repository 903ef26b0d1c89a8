package jxlbox

import (
	"errors"
	"fmt"
)

// Split takes a JPEG XL file apart: the primary codestream is reassembled
// from its jxlc/jxlp boxes, a jhgm box is decoded into a gain map bundle,
// and every other box is kept opaquely. Bare codestreams (no container) are
// accepted and yield a result with no gain map and no aux boxes.
func Split(data []byte) (*SplitResult, error) {
	switch DetectBitstreamKind(data) {
	case KindBareCodestream:
		return &SplitResult{
			Codestream: append([]byte(nil), data...),
			brand:      BrandJXL,
		}, nil
	case KindContainer:
	default:
		return nil, ErrBadSignature
	}

	boxes, err := ParseContainer(data)
	if err != nil {
		return nil, err
	}
	codestream, err := ExtractCodestream(boxes)
	if err != nil {
		return nil, err
	}

	sr := &SplitResult{
		Codestream: append([]byte(nil), codestream...),
		brand:      BrandJXL,
	}
	for _, b := range boxes {
		switch b.Type {
		case TypeSignature, TypeCodestream, TypePartialCodestream:
		case TypeFileType:
			if len(b.Payload) >= 4 {
				copy(sr.brand[:], b.Payload[:4])
			}
		case TypeGainMap:
			if sr.GainMap != nil {
				return nil, fmt.Errorf("%w: duplicate jhgm box", ErrInvalidBox)
			}
			sr.GainMap, err = DecodeGainMapBundle(b.Payload)
			if err != nil {
				return nil, fmt.Errorf("jhgm: %w", err)
			}
		default:
			sr.Aux = append(sr.Aux, Box{Type: b.Type, Payload: append([]byte(nil), b.Payload...)})
		}
	}
	return sr, nil
}

// Join assembles a container from the split pieces. The codestream goes
// back as a single jxlc box, followed by the re-encoded gain map bundle and
// the aux boxes in their original order.
func (sr *SplitResult) Join() ([]byte, error) {
	if len(sr.Codestream) == 0 {
		return nil, errors.New("codestream missing")
	}
	brand := sr.brand
	if brand == (BoxType{}) {
		brand = BrandJXL
	}

	boxes := []Box{{Type: TypeCodestream, Payload: sr.Codestream}}
	if sr.GainMap != nil {
		payload, err := sr.GainMap.Encode()
		if err != nil {
			return nil, fmt.Errorf("jhgm: %w", err)
		}
		boxes = append(boxes, Box{Type: TypeGainMap, Payload: payload})
	}
	boxes = append(boxes, sr.Aux...)
	return BuildContainer(brand, boxes)
}
