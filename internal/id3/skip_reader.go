package id3

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

var id3v2Flag = []byte("ID3") // first 3 bytes of an MP3 file with ID3v2 tag
const lenOfHeader = 10        // fixed length defined by ID3v2 spec

const flagFooterPresent = 0b00010000 // ID3v2.4 only

// ErrTruncatedTag means the stream ended inside an ID3v2 tag.
var ErrTruncatedTag = errors.New("ID3v2 tag is truncated")

// SkipReader reads through a leading ID3v2 tag block, but does not store
// anything in the memory. Reads after ReadThrough start at the first byte
// after the tag, or at the first byte of the stream if there is no tag.
type SkipReader struct {
	r *bufio.Reader
	n int // n bytes that has been skipped
}

func NewSkipReader(r io.Reader) *SkipReader {
	return &SkipReader{r: bufio.NewReader(r)}
}

// ReadThrough skips the tag and returns its total size, header and footer
// included. A stream without a tag is left untouched and 0 is returned.
func (s *SkipReader) ReadThrough() (int, error) {
	header, err := s.r.Peek(lenOfHeader)

	if !bytes.HasPrefix(header, id3v2Flag) {
		// Not a tag. Short streams are for the caller to report.
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("%w: header: %v", ErrTruncatedTag, err)
	}

	size := decodeTagSize(header[6:lenOfHeader]) + lenOfHeader // 6, 7, 8, 9
	if header[5]&flagFooterPresent != 0 {
		size += lenOfHeader
	}

	nDiscarded, err := s.r.Discard(size)
	s.n += nDiscarded

	if err != nil {
		return s.n, fmt.Errorf("%w: skipped %d of %d bytes", ErrTruncatedTag, nDiscarded, size)
	}

	return s.n, nil
}

func (s *SkipReader) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

// decodeTagSize returns an integer from 4-byte (32-bit) input.
// Per ID3v2 spec, the MSB of each byte is always 0 and ignored.
//
// For example:
//
//	(0x) 00 00 02 01
//	=> _0000000 _0000000 _0000010 _0000001
//	=> 10_0000001
//	=> 0x101
//	=> 257 (dec)
func decodeTagSize(data []byte) int {
	size := 0

	for place := 0; place < 4; place++ {
		value := data[place] & 0x7F
		size += int(value) << ((3 - place) * 7)
	}

	return size
}
