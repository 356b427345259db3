package main

import (
	"testing"
)

func TestParseCLIArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		mode cliMode
		msg  string
	}{
		{name: "run default", args: nil, mode: cliRun},
		{name: "version long", args: []string{"--version"}, mode: cliVersion},
		{name: "version short", args: []string{"-v"}, mode: cliVersion},
		{name: "help long", args: []string{"--help"}, mode: cliHelp},
		{name: "help word", args: []string{"help"}, mode: cliHelp},
		{name: "invalid flag", args: []string{"--bogus"}, mode: cliInvalid, msg: "unexpected argument: --bogus"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mode, msg := parseCLIArgs(tc.args)
			if mode != tc.mode {
				t.Fatalf("mode mismatch: got %v want %v", mode, tc.mode)
			}
			if tc.msg != "" && msg != tc.msg {
				t.Fatalf("msg mismatch: got %q want %q", msg, tc.msg)
			}
		})
	}
}

func TestResolveVersionInfo(t *testing.T) {
	v, c, d := resolveVersionInfo("dev", "none", "unknown", "v1.2.3", map[string]string{
		"vcs.revision": "abcdef0123456789",
		"vcs.time":     "2026-01-02T03:04:05Z",
	})
	if v != "v1.2.3" || c != "abcdef012345" || d != "2026-01-02T03:04:05Z" {
		t.Fatalf("unexpected resolution: %q %q %q", v, c, d)
	}

	v, c, d = resolveVersionInfo("v9", "sha", "today", "v1.2.3", nil)
	if v != "v9" || c != "sha" || d != "today" {
		t.Fatalf("explicit values must win: %q %q %q", v, c, d)
	}
}
