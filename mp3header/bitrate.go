package mp3header

import (
	"fmt"
	"strconv"
)

// BitrateKind tells which of the possible bitrate labels a Bitrate holds.
type BitrateKind uint8

const (
	BitrateKbps BitrateKind = iota
	BitrateFree             // encoder-chosen, index 0
	BitrateBad              // index 15
	BitrateNone             // version or layer is reserved
)

// Bitrate is the resolved bitrate label. Kbps is set only for BitrateKbps.
type Bitrate struct {
	Kind BitrateKind
	Kbps int
}

func (b Bitrate) String() string {
	switch b.Kind {
	case BitrateKbps:
		return strconv.Itoa(b.Kbps)
	case BitrateFree:
		return "free"
	case BitrateBad:
		return "bad"
	default:
		return "NONE (reserved version/layer)"
	}
}

// Composite key layout, low 5 bits: V1 V2 L1 L2 L3. The raw 4-bit index sits
// above them. V2.5 shares the V2 bit.
const (
	bitRateKeyV1 = 0b10000
	bitRateKeyV2 = 0b01000
	bitRateKeyL1 = 0b00100
	bitRateKeyL2 = 0b00010
	bitRateKeyL3 = 0b00001

	bitRateKeyShift = 5
)

type bitRateColumn [16]int

// 0 means free format
// -1 means bad bit rate
var (
	bitRateV1L1   = bitRateColumn{0, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448, -1}
	bitRateV1L2   = bitRateColumn{0, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384, -1}
	bitRateV1L3   = bitRateColumn{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, -1}
	bitRateV2L1   = bitRateColumn{0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256, -1}
	bitRateV2L2L3 = bitRateColumn{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, -1}
)

var bitRateTable = buildBitRateTable(map[uint32]bitRateColumn{
	bitRateKeyV1 | bitRateKeyL1: bitRateV1L1,
	bitRateKeyV1 | bitRateKeyL2: bitRateV1L2,
	bitRateKeyV1 | bitRateKeyL3: bitRateV1L3,
	bitRateKeyV2 | bitRateKeyL1: bitRateV2L1,
	bitRateKeyV2 | bitRateKeyL2: bitRateV2L2L3,
	bitRateKeyV2 | bitRateKeyL3: bitRateV2L2L3,
})

func buildBitRateTable(columns map[uint32]bitRateColumn) map[uint32]Bitrate {
	table := make(map[uint32]Bitrate, len(columns)*16)

	for flags, column := range columns {
		for index, kbps := range column {
			var b Bitrate
			switch kbps {
			case 0:
				b = Bitrate{Kind: BitrateFree}
			case -1:
				b = Bitrate{Kind: BitrateBad}
			default:
				b = Bitrate{Kind: BitrateKbps, Kbps: kbps}
			}
			table[uint32(index)<<bitRateKeyShift|flags] = b
		}
	}

	return table
}

func bitRateKey(index uint32, version AudioVersion, layer Layer) uint32 {
	key := index << bitRateKeyShift

	switch version {
	case Version1:
		key |= bitRateKeyV1
	case Version2, Version2_5:
		key |= bitRateKeyV2
	}

	switch layer {
	case Layer1:
		key |= bitRateKeyL1
	case Layer2:
		key |= bitRateKeyL2
	case Layer3:
		key |= bitRateKeyL3
	}

	return key
}

func lookupBitRate(key uint32) (Bitrate, error) {
	b, ok := bitRateTable[key]
	if !ok {
		return Bitrate{}, fmt.Errorf("%w: key %09b", ErrBitrateTableMiss, key)
	}

	return b, nil
}

// ResolveBitrate looks up bits 15-12 of h for the given version and layer,
// which must have been decoded from the same header.
func ResolveBitrate(h RawHeader, version AudioVersion, layer Layer) (Bitrate, error) {
	if version == VersionReserved || layer == LayerReserved {
		return Bitrate{Kind: BitrateNone}, nil
	}

	return lookupBitRate(bitRateKey(h.bitRateIndex(), version, layer))
}
