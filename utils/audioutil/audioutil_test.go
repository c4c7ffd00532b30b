package audioutil

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeBase64(t *testing.T) {
	raw := []byte{0x00, 0x01, 0x7F, 0x80, 0xFF}
	decoded, err := DecodeBase64(base64.StdEncoding.EncodeToString(raw))
	if err != nil {
		t.Fatalf("DecodeBase64 returned error: %v", err)
	}
	if diff := cmp.Diff(raw, decoded); diff != "" {
		t.Fatalf("decoded bytes mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeBase64Empty(t *testing.T) {
	decoded, err := DecodeBase64("")
	if err != nil {
		t.Fatalf("DecodeBase64 returned error: %v", err)
	}
	if len(decoded) != 0 {
		t.Fatalf("expected empty output, got %d bytes", len(decoded))
	}
}

func TestDecodeBase64Malformed(t *testing.T) {
	_, err := DecodeBase64("not*base64!")
	if err == nil {
		t.Fatal("expected error for malformed input")
	}

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %T: %v", err, err)
	}
	if decodeErr.Unwrap() == nil {
		t.Fatal("expected wrapped cause")
	}
}

// The same payload is decoded independently for playback and download;
// neither call may share or mutate the other's buffer.
func TestDecodeBase64IndependentBuffers(t *testing.T) {
	b64 := base64.StdEncoding.EncodeToString([]byte{1, 2, 3, 4})

	first, err := DecodeBase64(b64)
	if err != nil {
		t.Fatalf("first decode: %v", err)
	}
	second, err := DecodeBase64(b64)
	if err != nil {
		t.Fatalf("second decode: %v", err)
	}

	first[0] = 0xEE
	if second[0] != 1 {
		t.Fatal("decodes share a backing buffer")
	}
}
