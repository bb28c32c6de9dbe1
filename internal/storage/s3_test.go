package storage

import (
	"context"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *S3Store {
	t.Helper()
	store, err := NewS3Store(Options{
		AccessKey: "test-access",
		SecretKey: "test-secret",
		Endpoint:  "https://account.r2.cloudflarestorage.com",
		Region:    "auto",
		Bucket:    "healthmate-uploads",
		PublicURL: "https://files.healthmate.example",
		Folder:    "healthmate_uploads",
	})
	if err != nil {
		t.Fatalf("new store failed: %v", err)
	}
	return store
}

func TestNewS3StoreRequiresBucket(t *testing.T) {
	if _, err := NewS3Store(Options{}); err == nil {
		t.Fatal("expected error for missing bucket")
	}
}

func TestObjectKey(t *testing.T) {
	store := newTestStore(t)

	key := store.ObjectKey("blood report.pdf")
	if !strings.HasPrefix(key, "healthmate_uploads/") {
		t.Fatalf("key missing folder prefix: %q", key)
	}
	if !strings.HasSuffix(key, "_blood report.pdf") {
		t.Fatalf("key missing original filename: %q", key)
	}
	if key == store.ObjectKey("blood report.pdf") {
		t.Fatal("keys for repeated uploads must not collide")
	}
}

func TestObjectKeyStripsPathComponents(t *testing.T) {
	store := newTestStore(t)

	key := store.ObjectKey("..\\..\\evil/report.pdf")
	if strings.Contains(key, "..") {
		t.Fatalf("path components must be stripped from the key: %q", key)
	}
	if !strings.HasSuffix(key, "_report.pdf") {
		t.Fatalf("expected base name only, got %q", key)
	}
}

func TestKeyFromURL(t *testing.T) {
	store := newTestStore(t)

	key, err := store.keyFromURL("https://files.healthmate.example/healthmate_uploads/abc_report.pdf")
	if err != nil {
		t.Fatalf("key from public url failed: %v", err)
	}
	if key != "healthmate_uploads/abc_report.pdf" {
		t.Fatalf("unexpected key: %q", key)
	}

	key, err = store.keyFromURL("https://other.host/healthmate-uploads/healthmate_uploads/abc_report.pdf")
	if err != nil {
		t.Fatalf("key from path-style url failed: %v", err)
	}
	if key != "healthmate_uploads/abc_report.pdf" {
		t.Fatalf("unexpected key from path-style url: %q", key)
	}

	if _, err := store.keyFromURL("https://other.host/"); err == nil {
		t.Fatal("expected error for url without a key")
	}
}

func TestSignedGetURL(t *testing.T) {
	store := newTestStore(t)

	signed, err := store.SignedGetURL(context.Background(), "https://files.healthmate.example/healthmate_uploads/abc_report.pdf")
	if err != nil {
		t.Fatalf("signed get url failed: %v", err)
	}
	if !strings.Contains(signed, "healthmate_uploads/abc_report.pdf") {
		t.Fatalf("signed url missing object key: %q", signed)
	}
	if !strings.Contains(signed, "X-Amz-Signature=") {
		t.Fatalf("url is not presigned: %q", signed)
	}
}
