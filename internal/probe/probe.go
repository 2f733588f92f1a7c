// Package probe checks a decoded header against what a full MP3 decoder
// reports for the same stream.
package probe

import (
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/yorkxin/mp3frame/mp3header"
)

var (
	// ErrUnsupported is returned before decoding when go-mp3 could not
	// confirm the header anyway.
	ErrUnsupported = errors.New("cross-check needs an MPEG Layer III header with a known sample rate")
	ErrMismatch    = errors.New("decoder disagrees with frame header")
)

// sampleRater is the part of gomp3.Decoder used here, so tests can swap it
type sampleRater interface {
	SampleRate() int
}

var newDecoder = func(r io.Reader) (sampleRater, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, err
	}
	return dec, nil
}

// CrossCheck decodes r, which must start with the frame h was parsed from,
// and compares the decoder's sample rate with h's.
func CrossCheck(h mp3header.Header, r io.Reader) error {
	if h.Layer != mp3header.Layer3 || h.SampleRate.Kind != mp3header.SampleRateHz {
		return fmt.Errorf("%w: got %s, sample rate %s", ErrUnsupported, h.Layer, h.SampleRate)
	}

	dec, err := newDecoder(r)
	if err != nil {
		return fmt.Errorf("go-mp3: %w", err)
	}

	if got := dec.SampleRate(); got != h.SampleRate.Hz {
		return fmt.Errorf("%w: sample rate %d Hz, header says %d Hz", ErrMismatch, got, h.SampleRate.Hz)
	}

	return nil
}
