package storagekey

import (
	"strings"
	"testing"
	"time"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"cat.jpg", "cat.jpg"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\boot.ini", "boot.ini"},
		{"my photo (1).png", "my_photo__1_.png"},
		{"...", "file"},
		{"", "file"},
		{"a/b/c.png", "c.png"},
	}
	for _, tc := range cases {
		if got := SanitizeFilename(tc.in); got != tc.want {
			t.Fatalf("SanitizeFilename(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestNew(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	key := New("user-1", now, "../cat.jpg")

	if key != "user-1_1700000000000_cat.jpg" {
		t.Fatalf("unexpected key %q", key)
	}
	if strings.Contains(key, "/") {
		t.Fatalf("key must not contain path separators: %q", key)
	}
}
