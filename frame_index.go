package jxlbox

import (
	"encoding/binary"
	"fmt"
	"sort"
	"time"
)

// FrameIndexEntry is one keyframe record of a jxli box.
type FrameIndexEntry struct {
	// CodestreamOffset is the absolute byte offset of the keyframe in the
	// codestream, accumulated from the delta-coded wire values.
	CodestreamOffset uint64
	// DurationTicks is the tick count until the next indexed frame, or
	// until end of stream for the last entry.
	DurationTicks uint64
	// FrameCount is the number of displayed frames covered by this entry.
	FrameCount uint64
}

// FrameIndexBox is the decoded jxli seek table of an animated file.
// A tick lasts TNum/TDen seconds.
type FrameIndexBox struct {
	TNum    uint32
	TDen    uint32
	Entries []FrameIndexEntry
}

// NumFrames reports the number of indexed keyframes.
func (f *FrameIndexBox) NumFrames() int { return len(f.Entries) }

// TickDuration returns the duration of a single tick.
func (f *FrameIndexBox) TickDuration() time.Duration {
	return time.Duration(float64(time.Second) * float64(f.TNum) / float64(f.TDen))
}

// EntryForOffset finds the entry of the keyframe at or before the given
// codestream byte offset. Entries are ordered by offset.
func (f *FrameIndexBox) EntryForOffset(offset uint64) (FrameIndexEntry, bool) {
	i := sort.Search(len(f.Entries), func(i int) bool {
		return f.Entries[i].CodestreamOffset > offset
	})
	if i == 0 {
		return FrameIndexEntry{}, false
	}
	return f.Entries[i-1], true
}

// DecodeFrameIndex parses a jxli box payload: varint NF, u32 TNUM, u32 TDEN,
// then NF triples of varints (offset delta, duration ticks, frame count).
func DecodeFrameIndex(payload []byte) (*FrameIndexBox, error) {
	pos := 0
	readU32 := func() (uint32, error) {
		if pos+4 > len(payload) {
			return 0, fmt.Errorf("%w: frame index truncated", ErrInvalidBox)
		}
		v := binary.BigEndian.Uint32(payload[pos:])
		pos += 4
		return v, nil
	}
	readVarint := func() (uint64, error) {
		var v uint64
		var shift uint
		for {
			if shift > 56 {
				return 0, fmt.Errorf("%w: frame index varint too long", ErrInvalidBox)
			}
			if pos >= len(payload) {
				return 0, fmt.Errorf("%w: frame index truncated", ErrInvalidBox)
			}
			b := payload[pos]
			pos++
			v += uint64(b&0x7F) << shift
			if b <= 0x7F {
				return v, nil
			}
			shift += 7
		}
	}

	nf, err := readVarint()
	if err != nil {
		return nil, err
	}
	if nf > 0xFFFFFFFF {
		return nil, fmt.Errorf("%w: frame index declares %d entries", ErrInvalidBox, nf)
	}
	f := &FrameIndexBox{}
	if f.TNum, err = readU32(); err != nil {
		return nil, err
	}
	if f.TDen, err = readU32(); err != nil {
		return nil, err
	}
	if f.TDen == 0 {
		return nil, fmt.Errorf("%w: frame index tick denominator is zero", ErrInvalidBox)
	}

	// Each entry takes at least three varint bytes on the wire.
	capHint := nf
	if limit := uint64(len(payload)-pos) / 3; capHint > limit {
		capHint = limit
	}
	f.Entries = make([]FrameIndexEntry, 0, capHint)
	var offset uint64
	for i := uint64(0); i < nf; i++ {
		delta, err := readVarint()
		if err != nil {
			return nil, err
		}
		ticks, err := readVarint()
		if err != nil {
			return nil, err
		}
		frames, err := readVarint()
		if err != nil {
			return nil, err
		}
		next := offset + delta
		if next < offset {
			return nil, fmt.Errorf("%w: frame index offset overflow", ErrInvalidBox)
		}
		offset = next
		f.Entries = append(f.Entries, FrameIndexEntry{
			CodestreamOffset: offset,
			DurationTicks:    ticks,
			FrameCount:       frames,
		})
	}
	return f, nil
}
