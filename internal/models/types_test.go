package models

import (
	"testing"
)

func TestStringArrayValueRoundTrip(t *testing.T) {
	album := StringArray{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}

	value, err := album.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var scanned StringArray
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(scanned) != 2 || scanned[0] != album[0] {
		t.Fatalf("round trip mismatch: %#v", scanned)
	}
}

func TestStringArrayValueNilEncodesEmptyArray(t *testing.T) {
	var album StringArray

	value, err := album.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	raw, ok := value.([]byte)
	if !ok {
		t.Fatalf("value should be []byte, got %T", value)
	}
	if string(raw) != "[]" {
		t.Fatalf("nil array should encode as [], got %s", raw)
	}
}

func TestStringArrayScanVariants(t *testing.T) {
	var fromString StringArray
	if err := fromString.Scan(`["a","b"]`); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if len(fromString) != 2 {
		t.Fatalf("scan string want 2 items got %#v", fromString)
	}

	var fromNil StringArray
	if err := fromNil.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if fromNil == nil || len(fromNil) != 0 {
		t.Fatalf("scan nil should yield empty array, got %#v", fromNil)
	}

	var fromOther StringArray
	if err := fromOther.Scan(42); err != nil {
		t.Fatalf("scan unknown type: %v", err)
	}
	if len(fromOther) != 0 {
		t.Fatalf("unknown type should yield empty array, got %#v", fromOther)
	}
}
