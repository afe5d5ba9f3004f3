// Package tone synthesizes short sine-wave sound effects as in-memory
// WAV (RIFF/WAVE PCM) buffers.
package tone

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// WAV layout constants for mono 16-bit PCM.
const (
	HeaderSize    = 44
	Channels      = 1
	BitsPerSample = 16
	FullScale     = math.MaxInt16

	formatPCM   = 1
	fmtChunkLen = 16
	blockAlign  = Channels * BitsPerSample / 8

	// The RIFF size field covers everything after its own 8 bytes.
	maxFrames     = (math.MaxUint32 - (HeaderSize - 8)) / blockAlign
	maxSampleRate = math.MaxUint32 / blockAlign
)

// DefaultSampleRate is the rate used for game sound effects.
const DefaultSampleRate = 44100

var (
	// ErrInvalidParameter is returned for unusable synthesis inputs.
	ErrInvalidParameter = errors.New("tone: invalid parameter")
	// ErrMalformed is returned when a buffer is not a canonical PCM WAV.
	ErrMalformed = errors.New("tone: malformed wav")
)

// Buffer is a complete WAV container: a 44-byte header followed by
// little-endian 16-bit mono samples.
type Buffer []byte

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Generate synthesizes durationSeconds of a sine wave at frequencyHz.
// Each sample is round(volume * FullScale * sin(2*pi*f*t)). The frame
// count is durationSeconds*sampleRate rounded to the nearest integer, and
// never less than one. Volume 0 produces a full-length silent buffer.
func Generate(frequencyHz, durationSeconds, volume float64, sampleRate int) (Buffer, error) {
	switch {
	case !positiveFinite(frequencyHz):
		return nil, fmt.Errorf("%w: frequency %v Hz", ErrInvalidParameter, frequencyHz)
	case !positiveFinite(durationSeconds):
		return nil, fmt.Errorf("%w: duration %v s", ErrInvalidParameter, durationSeconds)
	case sampleRate <= 0 || sampleRate > maxSampleRate:
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidParameter, sampleRate)
	case math.IsNaN(volume) || volume < 0 || volume > 1:
		return nil, fmt.Errorf("%w: volume %v", ErrInvalidParameter, volume)
	}

	f := math.Round(durationSeconds * float64(sampleRate))
	if f > maxFrames {
		return nil, fmt.Errorf("%w: %v frames do not fit a wav container", ErrInvalidParameter, f)
	}
	frames := max(1, int(f))
	dataSize := frames * blockAlign

	buf := bytes.NewBuffer(make([]byte, 0, HeaderSize+dataSize))
	writeHeader(buf, sampleRate, dataSize)

	amplitude := volume * FullScale
	step := 2 * math.Pi * frequencyHz / float64(sampleRate)
	sample := make([]byte, 2)
	for n := range frames {
		v := math.Round(amplitude * math.Sin(step*float64(n)))
		binary.LittleEndian.PutUint16(sample, uint16(int16(v)))
		buf.Write(sample)
	}

	return Buffer(buf.Bytes()), nil
}

func writeHeader(buf *bytes.Buffer, sampleRate, dataSize int) {
	le := binary.LittleEndian
	buf.WriteString("RIFF")
	buf.Write(le.AppendUint32(nil, uint32(HeaderSize-8+dataSize)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	buf.Write(le.AppendUint32(nil, fmtChunkLen))
	buf.Write(le.AppendUint16(nil, formatPCM))
	buf.Write(le.AppendUint16(nil, Channels))
	buf.Write(le.AppendUint32(nil, uint32(sampleRate)))
	buf.Write(le.AppendUint32(nil, uint32(sampleRate*blockAlign)))
	buf.Write(le.AppendUint16(nil, blockAlign))
	buf.Write(le.AppendUint16(nil, BitsPerSample))

	buf.WriteString("data")
	buf.Write(le.AppendUint32(nil, uint32(dataSize)))
}

// Header returns the decoded and validated header.
func (b Buffer) Header() (Header, error) {
	return ParseHeader(b)
}

// Samples decodes the sample data.
func (b Buffer) Samples() ([]int16, error) {
	h, err := ParseHeader(b)
	if err != nil {
		return nil, err
	}
	data := b[HeaderSize : HeaderSize+int(h.DataSize)]
	out := make([]int16, len(data)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(data[2*i:]))
	}
	return out, nil
}
