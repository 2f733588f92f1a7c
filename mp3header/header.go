package mp3header

// For MPEG header format, see: http://www.mp3-tech.org/programmer/frame_header.html

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	mpegFlagFrameSync     = 0b11111111_11100000_00000000_00000000
	mpegFlagAudioVersion  = 0b00000000_00011000_00000000_00000000
	mpegFlagLayerDesc     = 0b00000000_00000110_00000000_00000000
	mpegFlagProtectionBit = 0b00000000_00000001_00000000_00000000
	mpegFlagBitRate       = 0b00000000_00000000_11110000_00000000
	mpegFlagSampleFreq    = 0b00000000_00000000_00001100_00000000
	mpegFlagPaddingBit    = 0b00000000_00000000_00000010_00000000
	mpegFlagPrivateBit    = 0b00000000_00000000_00000001_00000000
	mpegFlagChannelMode   = 0b00000000_00000000_00000000_11000000
	mpegFlagModeExtension = 0b00000000_00000000_00000000_00110000
	mpegFlagCopyright     = 0b00000000_00000000_00000000_00001000
	mpegFlagOriginal      = 0b00000000_00000000_00000000_00000100
	mpegFlagEmphasis      = 0b00000000_00000000_00000000_00000011
)

// HeaderSize is the number of bytes of a frame header.
const HeaderSize = 4

// RawHeader is the 32-bit frame header, first byte in the most significant
// position.
type RawHeader uint32

// NewRawHeader packs 4 bytes big-endian. Bytes beyond the 4th are ignored.
//
// For example:
//
//	(0x) FF FB 90 64
//	=> 11111111 11111011 10010000 01100100
//	=> 0xFFFB9064
func NewRawHeader(b []byte) (RawHeader, error) {
	if len(b) < HeaderSize {
		return 0, fmt.Errorf("%w: got %d of %d bytes", ErrTruncatedInput, len(b), HeaderSize)
	}

	return RawHeader(binary.BigEndian.Uint32(b)), nil
}

// ReadRawHeader consumes exactly 4 bytes from r.
func ReadRawHeader(r io.Reader) (RawHeader, error) {
	buf := make([]byte, HeaderSize)
	n, err := io.ReadFull(r, buf)

	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("%w: got %d of %d bytes: %w", ErrTruncatedInput, n, HeaderSize, err)
	}

	if err != nil {
		return 0, err
	}

	return NewRawHeader(buf)
}

// ValidateSync checks that bits 31-21 are all set.
func (h RawHeader) ValidateSync() error {
	if h&mpegFlagFrameSync != mpegFlagFrameSync {
		return fmt.Errorf("%w (expecting %08X, but found %08X)", ErrInvalidSync, uint32(mpegFlagFrameSync), uint32(h))
	}

	return nil
}

// Bytes returns the header in stream order.
func (h RawHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	binary.BigEndian.PutUint32(b, uint32(h))
	return b
}

// Bits returns the header as a 32-char binary string.
func (h RawHeader) Bits() string {
	return fmt.Sprintf("%032b", uint32(h))
}

func (h RawHeader) audioVersionIndex() uint32 { return uint32(h&mpegFlagAudioVersion) >> 19 }
func (h RawHeader) layerIndex() uint32        { return uint32(h&mpegFlagLayerDesc) >> 17 }
func (h RawHeader) bitRateIndex() uint32      { return uint32(h&mpegFlagBitRate) >> 12 }
func (h RawHeader) sampleFreqIndex() uint32   { return uint32(h&mpegFlagSampleFreq) >> 10 }
func (h RawHeader) channelModeIndex() uint32  { return uint32(h&mpegFlagChannelMode) >> 6 }

// Protected reports whether a 16-bit CRC follows the header. The bit is
// inverted on the wire: 0 means protected.
func (h RawHeader) Protected() bool { return h&mpegFlagProtectionBit == 0 }

func (h RawHeader) Padding() bool { return h&mpegFlagPaddingBit != 0 }

func (h RawHeader) Private() bool { return h&mpegFlagPrivateBit != 0 }

// ModeExtension is only meaningful for joint stereo.
func (h RawHeader) ModeExtension() int { return int(h&mpegFlagModeExtension) >> 4 }

func (h RawHeader) Copyright() bool { return h&mpegFlagCopyright != 0 }

func (h RawHeader) Original() bool { return h&mpegFlagOriginal != 0 }

// Emphasis returns the raw 2-bit emphasis field (0 none, 1 50/15 ms,
// 2 reserved, 3 CCIT J.17).
func (h RawHeader) Emphasis() int { return int(h & mpegFlagEmphasis) }
