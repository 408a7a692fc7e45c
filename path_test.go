package staticd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nlowe/staticd"
)

func TestProcessPath(t *testing.T) {
	tt := []struct {
		Name string
		Raw  string
		Want string
	}{
		// Already canonical
		{Name: "rooted path unchanged", Raw: "/foo/bar", Want: "/foo/bar"},
		{Name: "relative path unchanged", Raw: "foo/bar", Want: "foo/bar"},

		// Leading whitespace and control characters (00-1F)
		{Name: "leading spaces before slash", Raw: "  /foo/bar", Want: "/foo/bar"},
		{Name: "leading SOH before slash", Raw: "\x01/foo/bar", Want: "/foo/bar"},
		{Name: "leading US before slash", Raw: "\x1f/foo/bar", Want: "/foo/bar"},
		{Name: "leading spaces no slash", Raw: "  foo/bar", Want: "foo/bar"},
		{Name: "leading US no slash", Raw: "\x1ffoo/bar", Want: "foo/bar"},

		// Leading DEL (0x7F)
		{Name: "leading DEL before slash", Raw: "\x7f/foo/bar", Want: "/foo/bar"},

		// Interleaved control characters and slashes
		{Name: "space slash space", Raw: "  /  foo/bar", Want: "/foo/bar"},
		{Name: "repeated space slash groups", Raw: "  /  /  foo/bar", Want: "/foo/bar"},
		{Name: "slash runs with spaces", Raw: "  // /// ////  foo/bar", Want: "/foo/bar"},
		{Name: "control slash DEL mix", Raw: "\x01 / \x7f // foo/bar", Want: "/foo/bar"},

		// Root or empty
		{Name: "spaces only", Raw: "   ", Want: ""},
		{Name: "empty", Raw: "", Want: ""},
		{Name: "single slash", Raw: "/", Want: "/"},
		{Name: "slashes only", Raw: "///", Want: "/"},
		{Name: "slashes and spaces only", Raw: "/ /   / ", Want: "/"},
		{Name: "control characters only", Raw: "\x01\x1f\x7f", Want: ""},
	}

	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Want, staticd.ProcessPath(tc.Raw))
		})
	}
}

func TestProcessPath_NoiseOnlyInputs(t *testing.T) {
	// Inputs made only of control characters, spaces, and slashes reduce
	// to "/" when any slash appeared and "" otherwise.
	noise := []byte{' ', '\t', '\x00', '\x1f', '\x7f'}
	for _, a := range noise {
		for _, b := range noise {
			raw := string([]byte{a, b})
			assert.Equal(t, "", staticd.ProcessPath(raw), "raw %q", raw)
			assert.Equal(t, "/", staticd.ProcessPath(raw+"/"), "raw %q", raw+"/")
			assert.Equal(t, "/", staticd.ProcessPath("/"+raw), "raw %q", "/"+raw)
		}
	}
}
