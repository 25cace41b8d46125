package textdecode_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/temirov/devkit/internal/textdecode"
)

func TestDecodeSelectsFirstWorkingEncoding(t *testing.T) {
	testCases := []struct {
		name             string
		data             []byte
		expectedText     string
		expectedEncoding string
	}{
		{
			name:             "utf8",
			data:             []byte("héllo"),
			expectedText:     "héllo",
			expectedEncoding: textdecode.EncodingUTF8,
		},
		{
			name:             "utf16 little endian with bom",
			data:             []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00},
			expectedText:     "hi",
			expectedEncoding: textdecode.EncodingUTF16,
		},
		{
			name:             "utf16 big endian with bom",
			data:             []byte{0xFE, 0xFF, 0x00, 'o', 0x00, 'k'},
			expectedText:     "ok",
			expectedEncoding: textdecode.EncodingUTF16,
		},
		{
			name:             "shift_jis",
			data:             []byte{0x82, 0xA0},
			expectedText:     "あ",
			expectedEncoding: textdecode.EncodingShiftJIS,
		},
		{
			name:             "latin1",
			data:             []byte{'c', 'a', 'f', 0xE9, 0xFF},
			expectedText:     "caféÿ",
			expectedEncoding: textdecode.EncodingLatin1,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			text, encodingName := textdecode.Decode(testCase.data, textdecode.DefaultAttempts)
			if text != testCase.expectedText {
				t.Fatalf("expected text %q, got %q", testCase.expectedText, text)
			}
			if encodingName != testCase.expectedEncoding {
				t.Fatalf("expected encoding %s, got %s", testCase.expectedEncoding, encodingName)
			}
		})
	}
}

func TestDecodeFallsBackToLossyUTF8(t *testing.T) {
	failing := []textdecode.Attempt{{
		Name:   "never",
		Decode: func([]byte) (string, error) { return "", errors.New("no") },
	}}
	text, encodingName := textdecode.Decode([]byte{'o', 'k', 0xFF}, failing)
	if encodingName != textdecode.EncodingLossyUTF8 {
		t.Fatalf("expected lossy fallback, got %s", encodingName)
	}
	if text != "ok�" {
		t.Fatalf("unexpected lossy text %q", text)
	}
}

func TestDecodeNormalizesLineEndings(t *testing.T) {
	testCases := []struct {
		name         string
		data         []byte
		expectedText string
	}{
		{name: "crlf", data: []byte("a\r\nb\r\n"), expectedText: "a\nb\n"},
		{name: "lone carriage return", data: []byte("a\rb"), expectedText: "a\nb"},
		{name: "mixed", data: []byte("a\r\nb\rc\n"), expectedText: "a\nb\nc\n"},
		{name: "carriage return before crlf", data: []byte("a\r\r\n"), expectedText: "a\n\n"},
		{name: "utf16 crlf", data: []byte{0xFF, 0xFE, 'x', 0x00, '\r', 0x00, '\n', 0x00}, expectedText: "x\n"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if text, _ := textdecode.Decode(testCase.data, textdecode.DefaultAttempts); text != testCase.expectedText {
				t.Fatalf("expected %q, got %q", testCase.expectedText, text)
			}
		})
	}
}

func TestDecodeLossyFallbackKeepsLineEndings(t *testing.T) {
	failing := []textdecode.Attempt{{
		Name:   "never",
		Decode: func([]byte) (string, error) { return "", errors.New("no") },
	}}
	if text, _ := textdecode.Decode([]byte("a\r\nb"), failing); text != "a\r\nb" {
		t.Fatalf("expected raw line endings, got %q", text)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("line\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	text, encodingName, err := textdecode.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if text != "line\n" || encodingName != textdecode.EncodingUTF8 {
		t.Fatalf("unexpected result %q (%s)", text, encodingName)
	}
	if _, _, missingErr := textdecode.ReadFile(filepath.Join(t.TempDir(), "missing")); missingErr == nil {
		t.Fatalf("expected error for missing file")
	}
}
