package mp3header

// AudioVersion is the decoded MPEG audio version ID (bits 20-19).
type AudioVersion uint8

const (
	VersionReserved AudioVersion = iota
	Version1
	Version2
	Version2_5
)

// indexed by the raw 2-bit field
var audioVersionByIndex = [4]AudioVersion{
	0b00: Version2_5,
	0b01: VersionReserved,
	0b10: Version2,
	0b11: Version1,
}

// DecodeAudioVersion maps bits 20-19 of h.
func DecodeAudioVersion(h RawHeader) AudioVersion {
	return audioVersionByIndex[h.audioVersionIndex()]
}

func (v AudioVersion) String() string {
	switch v {
	case Version1:
		return "MPEG Version 1 (ISO/IEC 11172-3)"
	case Version2:
		return "MPEG Version 2 (ISO/IEC 13818-3)"
	case Version2_5:
		return "MPEG Version 2.5 (later extension of MPEG 2)"
	default:
		return "reserved"
	}
}

// Short returns "1", "2", "2.5" or "?".
func (v AudioVersion) Short() string {
	return [...]string{"?", "1", "2", "2.5"}[v&0b11]
}

// Layer is the decoded layer description (bits 18-17).
type Layer uint8

const (
	LayerReserved Layer = iota
	Layer1
	Layer2
	Layer3
)

var layerByIndex = [4]Layer{
	0b00: LayerReserved,
	0b01: Layer3,
	0b10: Layer2,
	0b11: Layer1,
}

// DecodeLayer maps bits 18-17 of h.
func DecodeLayer(h RawHeader) Layer {
	return layerByIndex[h.layerIndex()]
}

func (l Layer) String() string {
	switch l {
	case Layer1:
		return "Layer I"
	case Layer2:
		return "Layer II"
	case Layer3:
		return "Layer III"
	default:
		return "reserved"
	}
}

// ChannelMode is the decoded channel mode (bits 7-6). Every index is valid.
type ChannelMode uint8

const (
	ChannelModeStereo ChannelMode = iota
	ChannelModeJointStereo
	ChannelModeDualChannel
	ChannelModeMono
)

// DecodeChannelMode maps bits 7-6 of h.
func DecodeChannelMode(h RawHeader) ChannelMode {
	return ChannelMode(h.channelModeIndex())
}

func (c ChannelMode) String() string {
	return [...]string{
		"Stereo",
		"Joint stereo (Stereo)",
		"Dual channel (2 mono channels)",
		"Single channel (Mono)",
	}[c&0b11]
}

// Short returns a single-word name, as used in Header.String.
func (c ChannelMode) Short() string {
	return [...]string{"Stereo", "Joint Stereo", "Dual Channel", "Mono"}[c&0b11]
}
