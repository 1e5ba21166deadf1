package apng

import (
	"encoding/binary"
	"fmt"
)

const (
	actlSize = 8
	fctlSize = 26
	seqSize  = 4

	defaultDelayDen = 100
)

// animationControl is the acTL payload.
type animationControl struct {
	numFrames uint32
	numPlays  uint32
}

func parseACTL(data []byte) (animationControl, error) {
	if len(data) < actlSize {
		return animationControl{}, fmt.Errorf("%w: acTL length %d, expected %d", ErrMalformedChunk, len(data), actlSize)
	}
	return animationControl{
		numFrames: binary.BigEndian.Uint32(data[0:4]),
		numPlays:  binary.BigEndian.Uint32(data[4:8]),
	}, nil
}

// frameControl is the fcTL payload.
type frameControl struct {
	sequence  uint32
	width     uint32
	height    uint32
	xOffset   uint32
	yOffset   uint32
	delayNum  uint16
	delayDen  uint16
	disposeOp DisposeOp
	blendOp   BlendOp
}

func parseFCTL(data []byte) (frameControl, error) {
	if len(data) < fctlSize {
		return frameControl{}, fmt.Errorf("%w: fcTL length %d, expected %d", ErrMalformedChunk, len(data), fctlSize)
	}
	fc := frameControl{
		sequence:  binary.BigEndian.Uint32(data[0:4]),
		width:     binary.BigEndian.Uint32(data[4:8]),
		height:    binary.BigEndian.Uint32(data[8:12]),
		xOffset:   binary.BigEndian.Uint32(data[12:16]),
		yOffset:   binary.BigEndian.Uint32(data[16:20]),
		delayNum:  binary.BigEndian.Uint16(data[20:22]),
		delayDen:  binary.BigEndian.Uint16(data[22:24]),
		disposeOp: DisposeOp(data[24]),
		blendOp:   BlendOp(data[25]),
	}
	if fc.delayDen == 0 {
		fc.delayDen = defaultDelayDen
	}
	return fc, nil
}
