package id3

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"testing"
)

func Test_decodeTagSize(t *testing.T) {
	type args struct {
		data []byte
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{"example", args{data: []byte{0x00, 0x00, 0x02, 0x01}}, 257},
		{"sample 1", args{data: []byte{0x00, 0x03, 0x7F, 0x76}}, 65526},
		{"max value", args{data: []byte{0x7F, 0x7F, 0x7F, 0x7F}}, 268435455},
		{"all set", args{data: []byte{0xFF, 0xFF, 0xFF, 0xFF}}, 268435455},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeTagSize(tt.args.data); got != tt.want {
				t.Errorf("decodeTagSize() = %v, want %v", got, tt.want)
			}
		})
	}
}

var frameHeader = []byte{0xFF, 0xFB, 0x90, 0x64}

func tagged(header string, payload int) []byte {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.Write(make([]byte, payload))
	buf.Write(frameHeader)
	return buf.Bytes()
}

func TestSkipReader_ReadThrough(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    int
		wantErr error
		rest    []byte
	}{
		{
			name: "No tag",
			data: frameHeader,
			want: 0,
			rest: frameHeader,
		},
		{
			name: "Empty tag",
			data: tagged("ID3\x03\x00\x00\x00\x00\x00\x00", 0),
			want: 10,
			rest: frameHeader,
		},
		{
			name: "Padded tag",
			data: tagged("ID3\x03\x00\x00\x00\x00\x02\x01", 257),
			want: 267,
			rest: frameHeader,
		},
		{
			name: "v2.4 with footer",
			data: tagged("ID3\x04\x00\x10\x00\x00\x00\x05", 15),
			want: 25,
			rest: frameHeader,
		},
		{
			name: "Short stream",
			data: []byte{0xFF, 0xFB},
			want: 0,
			rest: []byte{0xFF, 0xFB},
		},
		{
			name:    "Truncated tag header",
			data:    []byte("ID3\x03"),
			wantErr: ErrTruncatedTag,
		},
		{
			name:    "Truncated tag body",
			data:    []byte("ID3\x03\x00\x00\x00\x00\x02\x01abc"),
			want:    13,
			wantErr: ErrTruncatedTag,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSkipReader(bytes.NewReader(tt.data))
			got, err := s.ReadThrough()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SkipReader.ReadThrough() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SkipReader.ReadThrough() = %v, want %v", got, tt.want)
			}
			if err != nil {
				return
			}

			rest, err := io.ReadAll(s)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(rest, tt.rest) {
				t.Errorf("remaining bytes = %X, want %X", rest, tt.rest)
			}
		})
	}
}
