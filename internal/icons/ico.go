package icons

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"
)

const (
	icoHeaderSize      = 6
	icoEntrySize       = 16
	icoTypeIcon        = 1
	icoPlanes          = 1
	icoBitsPerPixel    = 32
	icoMaximumSize     = 256
	errorIcoFrameSize  = "ico frame %d is outside 1..256"
	errorIcoEncodeSize = "encoding ico frame %d: %w"
)

// ErrNoFrames is returned when an icon container is requested without frames.
var ErrNoFrames = errors.New("no icon frames")

type icoHeader struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

type icoDirectoryEntry struct {
	Width       uint8
	Height      uint8
	ColorCount  uint8
	Reserved    uint8
	Planes      uint16
	BitCount    uint16
	BytesInRes  uint32
	ImageOffset uint32
}

// WriteICO writes frames as a Windows icon with PNG-compressed entries,
// smallest frame first.
func WriteICO(writer io.Writer, frames []Frame) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	ordered := append([]Frame(nil), frames...)
	sort.SliceStable(ordered, func(left, right int) bool {
		return ordered[left].Size < ordered[right].Size
	})

	payloads := make([][]byte, 0, len(ordered))
	for _, frame := range ordered {
		if frame.Size < 1 || frame.Size > icoMaximumSize {
			return fmt.Errorf(errorIcoFrameSize, frame.Size)
		}
		var buffer bytes.Buffer
		if encodeError := encodePNG(&buffer, frame.Image); encodeError != nil {
			return fmt.Errorf(errorIcoEncodeSize, frame.Size, encodeError)
		}
		payloads = append(payloads, buffer.Bytes())
	}

	header := icoHeader{Type: icoTypeIcon, Count: uint16(len(ordered))}
	if writeError := binary.Write(writer, binary.LittleEndian, header); writeError != nil {
		return writeError
	}
	offset := uint32(icoHeaderSize + icoEntrySize*len(ordered))
	for index, frame := range ordered {
		entry := icoDirectoryEntry{
			Width:       icoDimension(frame.Size),
			Height:      icoDimension(frame.Size),
			Planes:      icoPlanes,
			BitCount:    icoBitsPerPixel,
			BytesInRes:  uint32(len(payloads[index])),
			ImageOffset: offset,
		}
		if writeError := binary.Write(writer, binary.LittleEndian, entry); writeError != nil {
			return writeError
		}
		offset += entry.BytesInRes
	}
	for _, payload := range payloads {
		if _, writeError := writer.Write(payload); writeError != nil {
			return writeError
		}
	}
	return nil
}

// icoDimension stores 256 as 0, as the directory entry holds one byte.
func icoDimension(size int) uint8 {
	if size == icoMaximumSize {
		return 0
	}
	return uint8(size)
}
