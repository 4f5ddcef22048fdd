package konsave_test

import (
	"testing"

	"github.com/ruminaider/konsave-menu/internal/konsave"
	"github.com/ruminaider/konsave-menu/internal/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	calls  [][]string
	result runner.Result
}

func (r *recordingRunner) Run(name string, args ...string) runner.Result {
	r.calls = append(r.calls, append([]string{name}, args...))
	res := r.result
	res.Command = name
	res.Args = args
	return res
}

func TestClient_Argv(t *testing.T) {
	tests := []struct {
		name string
		call func(c *konsave.Client)
		want []string
	}{
		{"list", func(c *konsave.Client) { c.List() }, []string{"konsave", "-l"}},
		{"save", func(c *konsave.Client) { c.Save("Laptop", false) }, []string{"konsave", "-s", "Laptop"}},
		{"save force", func(c *konsave.Client) { c.Save("Laptop", true) }, []string{"konsave", "-s", "Laptop", "-f"}},
		{"import", func(c *konsave.Client) { c.Import("/tmp/a.knsv") }, []string{"konsave", "-i", "/tmp/a.knsv"}},
		{"export", func(c *konsave.Client) { c.Export("Work", "/tmp/work") }, []string{"konsave", "-e", "Work", "-n", "/tmp/work"}},
		{"apply", func(c *konsave.Client) { c.Apply("Work") }, []string{"konsave", "-a", "Work"}},
		{"remove", func(c *konsave.Client) { c.Remove("Work") }, []string{"konsave", "-r", "Work"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recordingRunner{}
			tt.call(konsave.New(r, ""))
			require.Len(t, r.calls, 1)
			assert.Equal(t, tt.want, r.calls[0])
		})
	}
}

func TestClient_Name(t *testing.T) {
	c := konsave.New(&recordingRunner{}, "/home/ana/.local/bin/konsave")
	assert.Equal(t, "konsave", c.Name())
	assert.Equal(t, "/home/ana/.local/bin/konsave", c.Binary())
}

func TestClient_Version(t *testing.T) {
	t.Run("first line", func(t *testing.T) {
		r := &recordingRunner{result: runner.Result{Stdout: "Konsave: 2.2.0\nextra\n"}}
		assert.Equal(t, "Konsave: 2.2.0", konsave.New(r, "").Version())
	})

	t.Run("failure falls back", func(t *testing.T) {
		r := &recordingRunner{result: runner.Result{ExitCode: -1, Err: assert.AnError}}
		assert.Equal(t, konsave.UnknownVersion, konsave.New(r, "").Version())
	})

	t.Run("empty output falls back", func(t *testing.T) {
		r := &recordingRunner{}
		assert.Equal(t, konsave.UnknownVersion, konsave.New(r, "").Version())
	})
}
