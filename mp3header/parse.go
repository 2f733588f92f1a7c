package mp3header

import (
	"fmt"
	"io"
)

// Header is the decoded form of a frame header.
type Header struct {
	Raw          RawHeader
	AudioVersion AudioVersion
	Layer        Layer
	Bitrate      Bitrate
	SampleRate   SampleRate
	ChannelMode  ChannelMode
}

func (h Header) String() string {
	bitRate := h.Bitrate.String()
	if h.Bitrate.Kind == BitrateKbps {
		bitRate += " kbps"
	}

	return fmt.Sprintf(
		"MPEG-%s Layer %s, %s, %s, %s",
		h.AudioVersion.Short(),
		[]string{"?", "I", "II", "III"}[h.Layer&0b11],
		bitRate,
		h.SampleRate,
		h.ChannelMode.Short(),
	)
}

// Parse validates the frame sync of raw, then decodes every field. Bitrate and
// sample rate are resolved from the version and layer decoded here, never
// re-derived.
func Parse(raw RawHeader) (Header, error) {
	if err := raw.ValidateSync(); err != nil {
		return Header{}, err
	}

	header := Header{
		Raw:          raw,
		AudioVersion: DecodeAudioVersion(raw),
		Layer:        DecodeLayer(raw),
		ChannelMode:  DecodeChannelMode(raw),
	}

	bitRate, err := ResolveBitrate(raw, header.AudioVersion, header.Layer)
	if err != nil {
		return Header{}, err
	}
	header.Bitrate = bitRate

	sampleRate, err := ResolveSampleRate(raw, header.AudioVersion)
	if err != nil {
		return Header{}, err
	}
	header.SampleRate = sampleRate

	return header, nil
}

// Decode reads 4 bytes from r and parses them. Nothing past the header is
// consumed.
func Decode(r io.Reader) (Header, error) {
	raw, err := ReadRawHeader(r)
	if err != nil {
		return Header{}, err
	}

	return Parse(raw)
}
