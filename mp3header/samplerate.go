package mp3header

import "fmt"

type SampleRateKind uint8

const (
	SampleRateHz SampleRateKind = iota
	SampleRateReserved
	SampleRateNone // version is reserved
)

// SampleRate is the resolved sampling frequency label. Hz is set only for
// SampleRateHz.
type SampleRate struct {
	Kind SampleRateKind
	Hz   int
}

func (s SampleRate) String() string {
	switch s.Kind {
	case SampleRateHz:
		return fmt.Sprintf("%d Hz", s.Hz)
	case SampleRateReserved:
		return "reserved"
	default:
		return "NONE (reserved version)"
	}
}

// Composite key layout: raw 2-bit index, then V1 V2 V2.5.
const (
	sampleRateKeyV1  = 0b100
	sampleRateKeyV2  = 0b010
	sampleRateKeyV25 = 0b001

	sampleRateKeyShift = 3
)

var sampleRateTable = map[uint32]SampleRate{
	0b00<<sampleRateKeyShift | sampleRateKeyV1:  {Hz: 44100},
	0b00<<sampleRateKeyShift | sampleRateKeyV2:  {Hz: 22050},
	0b00<<sampleRateKeyShift | sampleRateKeyV25: {Hz: 11025},

	0b01<<sampleRateKeyShift | sampleRateKeyV1:  {Hz: 48000},
	0b01<<sampleRateKeyShift | sampleRateKeyV2:  {Hz: 24000},
	0b01<<sampleRateKeyShift | sampleRateKeyV25: {Hz: 12000},

	0b10<<sampleRateKeyShift | sampleRateKeyV1:  {Hz: 32000},
	0b10<<sampleRateKeyShift | sampleRateKeyV2:  {Hz: 16000},
	0b10<<sampleRateKeyShift | sampleRateKeyV25: {Hz: 8000},

	0b11<<sampleRateKeyShift | sampleRateKeyV1:  {Kind: SampleRateReserved},
	0b11<<sampleRateKeyShift | sampleRateKeyV2:  {Kind: SampleRateReserved},
	0b11<<sampleRateKeyShift | sampleRateKeyV25: {Kind: SampleRateReserved},
}

func sampleRateKey(index uint32, version AudioVersion) uint32 {
	key := index << sampleRateKeyShift

	switch version {
	case Version1:
		key |= sampleRateKeyV1
	case Version2:
		key |= sampleRateKeyV2
	case Version2_5:
		key |= sampleRateKeyV25
	}

	return key
}

func lookupSampleRate(key uint32) (SampleRate, error) {
	s, ok := sampleRateTable[key]
	if !ok {
		return SampleRate{}, fmt.Errorf("%w: key %05b", ErrSampleRateTableMiss, key)
	}

	return s, nil
}

// ResolveSampleRate looks up bits 11-10 of h for the given version.
func ResolveSampleRate(h RawHeader, version AudioVersion) (SampleRate, error) {
	if version == VersionReserved {
		return SampleRate{Kind: SampleRateNone}, nil
	}

	return lookupSampleRate(sampleRateKey(h.sampleFreqIndex(), version))
}
