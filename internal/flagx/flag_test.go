package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	allowed := []string{"-c", "-config"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "separate value", args: []string{"-c", "conf.json", "-u", "http://x"}, want: []string{"-c", "conf.json"}},
		{name: "equals form", args: []string{"-config=alt.json", "-u", "http://x"}, want: []string{"-config=alt.json"}},
		{name: "order preserved", args: []string{"-config=a.json", "-c", "b.json"}, want: []string{"-config=a.json", "-c", "b.json"}},
		{name: "unknown ignored", args: []string{"-x", "1", "--y=2", "positional"}, want: []string{}},
		{name: "trailing flag without value", args: []string{"-c"}, want: []string{"-c"}},
		{name: "next token is a flag", args: []string{"-c", "-store", "memory"}, want: []string{"-c"}},
		{name: "empty", args: nil, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, allowed))
		})
	}
}

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"jobmatch"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestConfigFileFlag(t *testing.T) {
	withArgs(t, "-u", "http://localhost", "-config", "cfg.json")
	assert.Equal(t, "cfg.json", ConfigFileFlag())

	withArgs(t, "-c=short.json")
	assert.Equal(t, "short.json", ConfigFileFlag())

	withArgs(t, "-u", "http://localhost")
	assert.Equal(t, "", ConfigFileFlag())
}

func TestEnvFileFlag(t *testing.T) {
	withArgs(t, "-e", ".env.local", "-c", "cfg.json")
	assert.Equal(t, ".env.local", EnvFileFlag())
}
