package cli

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheDirUsesXDGCacheHome(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join("/tmp/xdg-cache", appName)
	if dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	t.Setenv("HOME", "/tmp/home")

	dir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(dir, filepath.Join(".cache", appName)) {
		t.Errorf("cacheDir() = %q, want ~/.cache/%s suffix", dir, appName)
	}
}

func TestEncodingFor(t *testing.T) {
	tests := []struct {
		name string
		flag string
		path string
		want string
	}{
		{"ExplicitFlagWins", "bson", "instance.json", "bson"},
		{"BSONExtension", "", "instance.bson", "bson"},
		{"JSONExtension", "", "instance.json", "json"},
		{"UnknownExtension", "", "instance.dat", "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := encodingFor(tt.flag, tt.path); got != tt.want {
				t.Errorf("encodingFor(%q, %q) = %q, want %q", tt.flag, tt.path, got, tt.want)
			}
		})
	}
}
