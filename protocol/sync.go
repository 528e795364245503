package protocol

import (
	"errors"
	"fmt"
	"io"
)

// ByteStream is the minimal view of a stream transport needed to
// resynchronize on frame boundaries: a blocking read plus a count of
// bytes that can be read without blocking.
type ByteStream interface {
	// ReadExact blocks until len(p) bytes arrive or the stream gives
	// up, returning however many bytes were read.
	ReadExact(p []byte) (int, error)

	// Available returns the number of bytes readable without blocking.
	Available() int
}

// SyncMeasurementFrame locates and reads one measurement frame from a
// stream that offers no inherent message boundaries.
//
// A UART read may land mid-stream with up to a full stale frame of
// bytes ahead of the next header, so bytes are consumed one at a time
// and discarded until two consecutive bytes equal the header pattern
// (0x59, 0x59); the remaining MeasurementFrameSize-2 bytes then
// complete the frame. Exactly one frame is consumed; later frames stay
// buffered for subsequent reads.
//
// Returns ErrSyncTimeout when the stream is exhausted before a header
// is found or before the frame body can be filled.
func SyncMeasurementFrame(src ByteStream) ([]byte, error) {
	var prev, cur byte
	for {
		if src.Available() == 0 {
			return nil, ErrSyncTimeout
		}
		var b [1]byte
		n, err := src.ReadExact(b[:])
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrSyncTimeout
			}
			return nil, fmt.Errorf("read stream: %w", err)
		}
		if n == 0 {
			return nil, ErrSyncTimeout
		}
		prev, cur = cur, b[0]
		if prev == MeasurementHeader && cur == MeasurementHeader {
			break
		}
	}

	frame := make([]byte, MeasurementFrameSize)
	frame[0], frame[1] = MeasurementHeader, MeasurementHeader
	n, err := src.ReadExact(frame[2:])
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read frame body: %w", err)
	}
	if n != MeasurementFrameSize-2 {
		return nil, ErrSyncTimeout
	}
	return frame, nil
}
