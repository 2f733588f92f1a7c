package probe

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/yorkxin/mp3frame/mp3header"
)

type mockDecoder struct {
	sampleRate int
}

func (m mockDecoder) SampleRate() int { return m.sampleRate }

func withDecoder(t *testing.T, dec sampleRater, err error) {
	t.Helper()

	orig := newDecoder
	newDecoder = func(io.Reader) (sampleRater, error) {
		if err != nil {
			return nil, err
		}
		return dec, nil
	}
	t.Cleanup(func() { newDecoder = orig })
}

func mustParse(t *testing.T, raw mp3header.RawHeader) mp3header.Header {
	t.Helper()

	h, err := mp3header.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}

	return h
}

func TestCrossCheck(t *testing.T) {
	decodeErr := errors.New("mp3: only layer3 is supported")

	tests := []struct {
		name       string
		raw        mp3header.RawHeader
		sampleRate int
		decodeErr  error
		wantErr    error
	}{
		{"Match", 0xFFFB9064, 44100, nil, nil},
		{"MPEG-2 match", 0xFFF390C0, 22050, nil, nil},
		{"Mismatch", 0xFFFB9064, 48000, nil, ErrMismatch},
		{"Decoder rejects stream", 0xFFFB9064, 0, decodeErr, decodeErr},
		{"Layer I", 0xFFFF0000, 44100, nil, ErrUnsupported},
		{"Reserved sample rate", 0xFFFB9C00, 44100, nil, ErrUnsupported},
		{"Reserved version", 0xFFEB9000, 44100, nil, ErrUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withDecoder(t, mockDecoder{tt.sampleRate}, tt.decodeErr)

			err := CrossCheck(mustParse(t, tt.raw), bytes.NewReader(nil))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CrossCheck() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCrossCheck_InvalidStream(t *testing.T) {
	// Real decoder: a lone header with no frame data behind it.
	stream := []byte{0xFF, 0xFB, 0x90, 0x64}

	if err := CrossCheck(mustParse(t, 0xFFFB9064), bytes.NewReader(stream)); err == nil {
		t.Error("CrossCheck() error = nil, want error for truncated stream")
	}
}
