// Package textdecode reads file bodies by trying a fixed list of text encodings.
package textdecode

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

// Encoding names reported by Decode.
const (
	EncodingUTF8     = "utf-8"
	EncodingUTF16    = "utf-16"
	EncodingShiftJIS = "shift_jis"
	EncodingLatin1   = "latin-1"
	// EncodingLossyUTF8 marks text decoded as UTF-8 with invalid sequences replaced.
	EncodingLossyUTF8 = "utf-8-replace"
)

var (
	utf16LittleEndianMark = []byte{0xFF, 0xFE}
	utf16BigEndianMark    = []byte{0xFE, 0xFF}

	errUndecodable = errors.New("undecodable input")

	// newlineNormalizer applies universal newlines: "\r\n" and a lone "\r" become "\n".
	newlineNormalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// Attempt decodes data strictly under one encoding, failing instead of substituting characters.
type Attempt struct {
	Name   string
	Decode func(data []byte) (string, error)
}

// DefaultAttempts is the ordered encoding list used by ReadFile.
var DefaultAttempts = []Attempt{
	{Name: EncodingUTF8, Decode: decodeUTF8},
	{Name: EncodingUTF16, Decode: decodeUTF16},
	{Name: EncodingShiftJIS, Decode: strictDecoder(japanese.ShiftJIS)},
	{Name: EncodingLatin1, Decode: strictDecoder(charmap.ISO8859_1)},
}

// Decode returns data as text using the first attempt that succeeds, with line endings
// normalized to "\n". When every attempt fails it falls back to UTF-8 with invalid
// sequences replaced and line endings left as they are. The second result names the
// encoding used.
func Decode(data []byte, attempts []Attempt) (string, string) {
	for _, attempt := range attempts {
		if text, err := attempt.Decode(data); err == nil {
			return newlineNormalizer.Replace(text), attempt.Name
		}
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError)), EncodingLossyUTF8
}

// ReadFile reads path and decodes it with DefaultAttempts.
//
// #nosec G304
func ReadFile(path string) (string, string, error) {
	data, readError := os.ReadFile(path)
	if readError != nil {
		return "", "", readError
	}
	text, encodingName := Decode(data, DefaultAttempts)
	return text, encodingName, nil
}

func decodeUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errUndecodable
	}
	return string(data), nil
}

// decodeUTF16 requires a byte order mark; without one almost any even-length input would decode.
func decodeUTF16(data []byte) (string, error) {
	if len(data)%2 != 0 {
		return "", errUndecodable
	}
	var endianness unicode.Endianness
	switch {
	case bytes.HasPrefix(data, utf16LittleEndianMark):
		endianness = unicode.LittleEndian
	case bytes.HasPrefix(data, utf16BigEndianMark):
		endianness = unicode.BigEndian
	default:
		return "", errUndecodable
	}
	return strictDecoder(unicode.UTF16(endianness, unicode.ExpectBOM))(data)
}

// strictDecoder rejects output containing U+FFFD, which the x/text decoders emit for invalid input.
func strictDecoder(textEncoding encoding.Encoding) func([]byte) (string, error) {
	return func(data []byte) (string, error) {
		decoded, err := textEncoding.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		if bytes.ContainsRune(decoded, utf8.RuneError) {
			return "", errUndecodable
		}
		return string(decoded), nil
	}
}
