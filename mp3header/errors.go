package mp3header

import "errors"

var (
	// ErrTruncatedInput means fewer than 4 header bytes were available.
	ErrTruncatedInput = errors.New("corrupt mp3? cannot read 4 bytes frame header")

	// ErrInvalidSync means bits 31-21 of the header are not all set.
	ErrInvalidSync = errors.New("MP3 frame sync not found")

	// ErrBitrateTableMiss and ErrSampleRateTableMiss mean a lookup table is
	// missing a reachable key. They never result from bad input.
	ErrBitrateTableMiss    = errors.New("bitrate table has no entry")
	ErrSampleRateTableMiss = errors.New("sample rate table has no entry")
)
