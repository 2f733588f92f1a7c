package mp3frame

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yorkxin/mp3frame/internal/id3"
	"github.com/yorkxin/mp3frame/internal/probe"
	"github.com/yorkxin/mp3frame/mp3header"
)

// Options control how Describe positions and checks the stream. The zero
// value reads the first 4 bytes of the source and nothing else.
type Options struct {
	// SkipID3 steps over a leading ID3v2 tag before reading the header.
	SkipID3 bool

	// Verify decodes the rest of the stream with go-mp3 and fails if its
	// sample rate disagrees with the header.
	Verify bool
}

// open is swapped in tests to observe the source's lifetime.
var open = Open

// Describe decodes the frame header found at the start of location.
// The source is closed on every path.
func Describe(location string, opts Options) (header mp3header.Header, err error) {
	r, err := open(location)
	if err != nil {
		return mp3header.Header{}, err
	}

	defer func() {
		if closeErr := r.Close(); err == nil && closeErr != nil {
			header, err = mp3header.Header{}, closeErr
		}
	}()

	return decode(r, opts)
}

func decode(r io.Reader, opts Options) (mp3header.Header, error) {
	if opts.SkipID3 {
		skipper := id3.NewSkipReader(r)
		if _, err := skipper.ReadThrough(); err != nil {
			return mp3header.Header{}, err
		}
		r = skipper
	}

	header, err := mp3header.Decode(r)
	if err != nil {
		return mp3header.Header{}, err
	}

	if opts.Verify {
		// the decoder needs the whole stream, header included
		stream := io.MultiReader(bytes.NewReader(header.Raw.Bytes()), r)

		if err := probe.CrossCheck(header, stream); err != nil {
			return mp3header.Header{}, fmt.Errorf("verify: %w", err)
		}
	}

	return header, nil
}
