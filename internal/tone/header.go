package tone

import (
	"encoding/binary"
	"fmt"
	"time"
)

// Header is the decoded canonical WAV header.
type Header struct {
	ChunkSize     uint32
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataSize      uint32
}

// Frames returns the number of sample frames in the data chunk.
func (h Header) Frames() int {
	if h.BlockAlign == 0 {
		return 0
	}
	return int(h.DataSize) / int(h.BlockAlign)
}

// Duration returns the playing time of the data chunk.
func (h Header) Duration() time.Duration {
	if h.SampleRate == 0 {
		return 0
	}
	return time.Duration(h.Frames()) * time.Second / time.Duration(h.SampleRate)
}

// ParseHeader decodes the 44-byte canonical PCM header of b and checks
// that its fields agree with each other and with the length of b.
func ParseHeader(b []byte) (Header, error) {
	var h Header
	if len(b) < HeaderSize {
		return h, fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformed, len(b), HeaderSize)
	}
	if string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" {
		return h, fmt.Errorf("%w: missing RIFF/WAVE magic", ErrMalformed)
	}
	if string(b[12:16]) != "fmt " || string(b[36:40]) != "data" {
		return h, fmt.Errorf("%w: unexpected chunk layout", ErrMalformed)
	}

	le := binary.LittleEndian
	h = Header{
		ChunkSize:     le.Uint32(b[4:8]),
		AudioFormat:   le.Uint16(b[20:22]),
		Channels:      le.Uint16(b[22:24]),
		SampleRate:    le.Uint32(b[24:28]),
		ByteRate:      le.Uint32(b[28:32]),
		BlockAlign:    le.Uint16(b[32:34]),
		BitsPerSample: le.Uint16(b[34:36]),
		DataSize:      le.Uint32(b[40:44]),
	}

	switch {
	case le.Uint32(b[16:20]) != fmtChunkLen || h.AudioFormat != formatPCM:
		return h, fmt.Errorf("%w: not plain PCM", ErrMalformed)
	case h.Channels == 0 || h.SampleRate == 0 || h.BitsPerSample%8 != 0:
		return h, fmt.Errorf("%w: bad format fields", ErrMalformed)
	case uint32(h.BlockAlign) != uint32(h.Channels)*uint32(h.BitsPerSample)/8:
		return h, fmt.Errorf("%w: block align %d", ErrMalformed, h.BlockAlign)
	case h.ByteRate != h.SampleRate*uint32(h.BlockAlign):
		return h, fmt.Errorf("%w: byte rate %d", ErrMalformed, h.ByteRate)
	case h.ChunkSize != HeaderSize-8+h.DataSize:
		return h, fmt.Errorf("%w: chunk size %d for data size %d", ErrMalformed, h.ChunkSize, h.DataSize)
	case uint64(len(b)) != HeaderSize+uint64(h.DataSize):
		return h, fmt.Errorf("%w: %d bytes, header declares %d", ErrMalformed, len(b), HeaderSize+uint64(h.DataSize))
	}
	return h, nil
}
