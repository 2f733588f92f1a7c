// Package report renders a decoded frame header as labelled text lines.
package report

import (
	"fmt"
	"io"

	"github.com/yorkxin/mp3frame/mp3header"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Options control what Write prints beyond the five fields.
type Options struct {
	// Lang localises numbers, e.g. "de" prints "44.100 Hz". Empty prints
	// plain digits.
	Lang string

	Bits    bool // the header as a binary string
	Verbose bool // protection, padding and the other single-bit flags
}

type sprintf func(format string, a ...interface{}) string

func newSprintf(lang string) (sprintf, error) {
	if lang == "" {
		return fmt.Sprintf, nil
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", lang, err)
	}

	p := message.NewPrinter(tag)

	return func(format string, a ...interface{}) string {
		return p.Sprintf(format, a...)
	}, nil
}

// Field is one printed line.
type Field struct {
	Label string
	Value string
}

// Fields returns what Write prints, in order.
func Fields(h mp3header.Header, opts Options) ([]Field, error) {
	sp, err := newSprintf(opts.Lang)
	if err != nil {
		return nil, err
	}

	var fields []Field

	if opts.Bits {
		fields = append(fields, Field{"Header Bits", h.Raw.Bits()})
	}

	fields = append(fields,
		Field{"Audio Version ID", h.AudioVersion.String()},
		Field{"Layer", h.Layer.String()},
		Field{"Bitrate", bitrate(sp, h.Bitrate)},
		Field{"Sample Rate", sampleRate(sp, h.SampleRate)},
		Field{"Channel", h.ChannelMode.String()},
	)

	if opts.Verbose {
		raw := h.Raw
		fields = append(fields,
			Field{"CRC Protected", yesNo(raw.Protected())},
			Field{"Padding", yesNo(raw.Padding())},
			Field{"Private", yesNo(raw.Private())},
			Field{"Mode Extension", sp("%d", raw.ModeExtension())},
			Field{"Copyright", yesNo(raw.Copyright())},
			Field{"Original", yesNo(raw.Original())},
			Field{"Emphasis", emphasis(raw.Emphasis())},
		)
	}

	return fields, nil
}

// Write prints h to w, one "Label : value" line per field.
func Write(w io.Writer, h mp3header.Header, opts Options) error {
	fields, err := Fields(h, opts)
	if err != nil {
		return err
	}

	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "%-16s : %s\n", f.Label, f.Value); err != nil {
			return err
		}
	}

	return nil
}

func bitrate(sp sprintf, b mp3header.Bitrate) string {
	if b.Kind != mp3header.BitrateKbps {
		return b.String()
	}
	return sp("%d", b.Kbps)
}

func sampleRate(sp sprintf, s mp3header.SampleRate) string {
	if s.Kind != mp3header.SampleRateHz {
		return s.String()
	}
	return sp("%d Hz", s.Hz)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func emphasis(e int) string {
	return [...]string{"none", "50/15 ms", "reserved", "CCIT J.17"}[e&0b11]
}
