package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("CELLAR_TEST_DIR", "/tmp/cellar")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "absolute untouched", in: "/var/data/cellar.db", want: "/var/data/cellar.db"},
		{name: "tilde prefix", in: "~/wines/top100.json", want: filepath.Join(home, "wines", "top100.json")},
		{name: "bare tilde", in: "~", want: home},
		{name: "env var", in: "$CELLAR_TEST_DIR/top100.json", want: "/tmp/cellar/top100.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}
