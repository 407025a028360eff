package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/wirepack"
	"github.com/wippyai/wirepack/codec"
	"github.com/wippyai/wirepack/fingerprint"
)

const orderYAML = `id: 7
items:
  - widget
  - gadget
note: null
`

func TestEncode_Binary(t *testing.T) {
	var out bytes.Buffer
	err := runEncode(nil, strings.NewReader(orderYAML), &out)
	require.NoError(t, err)

	want, err := codec.Marshal(wirepack.Opts{}, map[string]any{
		"id":    7,
		"items": []any{"widget", "gadget"},
		"note":  (*any)(nil),
	})
	require.NoError(t, err)
	assert.Equal(t, want, out.Bytes())
}

func TestEncode_FormatFlag(t *testing.T) {
	for _, f := range []string{"cbor", "msgpack"} {
		t.Run(f, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, runEncode([]string{"--format", f}, strings.NewReader(orderYAML), &out))

			format, err := wirepack.ParseFormat(f)
			require.NoError(t, err)

			var decoded map[string]any
			require.NoError(t, codec.Unmarshal(wirepack.Opts{Format: format}, out.Bytes(), &decoded))
			assert.Equal(t, "widget", decoded["items"].([]any)[0])
			assert.Nil(t, decoded["note"])
		})
	}
}

func TestEncode_EnvFormat(t *testing.T) {
	t.Setenv("WIREPACK_FORMAT", "cbor")

	var out bytes.Buffer
	require.NoError(t, runEncode(nil, strings.NewReader("42\n"), &out))
	assert.Equal(t, []byte{0x18, 0x2a}, out.Bytes())
}

func TestEncode_BadEnvFormat(t *testing.T) {
	t.Setenv("WIREPACK_FORMAT", "xml")
	err := runEncode(nil, strings.NewReader("1\n"), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestEncode_MultipleDocuments(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runEncode([]string{"--format", "msgpack"}, strings.NewReader("1\n---\n2\n"), &out))
	assert.Equal(t, []byte{0x01, 0x02}, out.Bytes())
}

func TestEncode_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.yaml")
	require.NoError(t, os.WriteFile(path, []byte("true\n"), 0o600))

	var out bytes.Buffer
	require.NoError(t, runEncode([]string{"-f", path}, strings.NewReader(""), &out))
	assert.Equal(t, []byte{0x01}, out.Bytes())
}

func TestEncode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		input string
	}{
		{"unknown format", []string{"--format", "xml"}, "1\n"},
		{"bad yaml", nil, "a: [1, 2\n"},
		{"missing file", []string{"-f", "/nonexistent/in.yaml"}, ""},
		{"unknown flag", []string{"--bogus"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runEncode(tt.args, strings.NewReader(tt.input), &bytes.Buffer{})
			assert.Error(t, err)
		})
	}
}

const pointDescriptor = `name: point
size: 8
version:
  major: 1
  minor: 2
  revision: 3
properties:
  trivial: true
  standard_layout: true
  aggregate: true
compiler: gc
`

func writeDescriptor(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "point.yaml")
	require.NoError(t, os.WriteFile(path, []byte(pointDescriptor), 0o600))
	return path
}

func TestFingerprint(t *testing.T) {
	path := writeDescriptor(t)

	var out bytes.Buffer
	require.NoError(t, runFingerprint([]string{"-f", path}, &out))

	want := fingerprint.Compute(fingerprint.Descriptor{
		Name:    "point",
		Size:    8,
		Version: fingerprint.Version{Major: 1, Minor: 2, Revision: 3},
		Properties: fingerprint.Properties{
			Trivial:        true,
			StandardLayout: true,
			Aggregate:      true,
		},
		Compiler: "gc",
	})
	assert.Contains(t, out.String(), "fingerprint: "+want.String())
	assert.Contains(t, out.String(), "version:     v1,2,3")
}

func TestFingerprint_Check(t *testing.T) {
	path := writeDescriptor(t)

	var first bytes.Buffer
	require.NoError(t, runFingerprint([]string{"-f", path}, &first))
	d, err := parseDescriptor([]byte(pointDescriptor))
	require.NoError(t, err)
	local := fingerprint.Compute(d)

	var out bytes.Buffer
	require.NoError(t, runFingerprint([]string{"-f", path, "--check", local.String()}, &out))
	assert.Contains(t, out.String(), "compatible")

	var other fingerprint.Fingerprint
	err = runFingerprint([]string{"-f", path, "--check", other.String()}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestFingerprint_Errors(t *testing.T) {
	assert.Error(t, runFingerprint(nil, &bytes.Buffer{}))

	path := filepath.Join(t.TempDir(), "anon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: 4\n"), 0o600))
	assert.Error(t, runFingerprint([]string{"-f", path}, &bytes.Buffer{}))
}

func TestParseDescriptor_DefaultCompiler(t *testing.T) {
	d, err := parseDescriptor([]byte("name: x\n"))
	require.NoError(t, err)
	assert.NotEmpty(t, d.Compiler)
	assert.Equal(t, "v0,0,0", d.VersionString())
}

func TestEncode_NaNKey(t *testing.T) {
	for _, f := range []string{"binary", "cbor"} {
		t.Run(f, func(t *testing.T) {
			var out bytes.Buffer
			err := runEncode([]string{"--format", f}, strings.NewReader(".nan: 1\nb: 2\n"), &out)
			require.NoError(t, err)
			assert.NotEmpty(t, out.Bytes())
		})
	}
}
