package model

import "testing"

func TestStringListValue(t *testing.T) {
	v, err := StringList{"a", "b"}.Value()
	if err != nil {
		t.Fatalf("value failed: %v", err)
	}
	if v != `["a","b"]` {
		t.Fatalf("unexpected stored value: %v", v)
	}

	empty, err := StringList(nil).Value()
	if err != nil {
		t.Fatalf("value failed for nil list: %v", err)
	}
	if empty != "[]" {
		t.Fatalf("nil list should store as empty array, got %v", empty)
	}
}

func TestStringListScan(t *testing.T) {
	var l StringList
	if err := l.Scan([]byte(`["x","y"]`)); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(l) != 2 || l[0] != "x" || l[1] != "y" {
		t.Fatalf("unexpected scanned list: %v", l)
	}

	var fromString StringList
	if err := fromString.Scan(`["z"]`); err != nil {
		t.Fatalf("scan from string failed: %v", err)
	}
	if len(fromString) != 1 || fromString[0] != "z" {
		t.Fatalf("unexpected scanned list: %v", fromString)
	}

	var fromNil StringList
	if err := fromNil.Scan(nil); err != nil {
		t.Fatalf("scan from nil failed: %v", err)
	}
	if fromNil != nil {
		t.Fatalf("expected nil list, got %v", fromNil)
	}

	var bad StringList
	if err := bad.Scan(42); err == nil {
		t.Fatal("expected error for unsupported source type")
	}
}
