/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"dirpx.dev/renamed"
)

const namesYAML = `
names:
  - id: 8c1f07a2-5b1e-4c3a-9f0d-2a6b7c8d9e0f
    name: alice
    prefix: U
    length: 8
    short: true
  - id: 3f2a9c41-0000-4000-8000-000000000000
    name: bob
    prefix: U
    length: 8
  - id: deadbeefcafe
    prefix: H
    length: 6
`

func TestParseNames(t *testing.T) {
	entries, err := parseNames([]byte(namesYAML))
	if err != nil {
		t.Fatalf("parseNames: %v", err)
	}
	if len(entries) != 3 || entries[0].Name != "alice" || !entries[0].Short || entries[2].Length != 6 {
		t.Fatalf("unexpected entries: %+v", entries)
	}

	if _, err := parseNames([]byte("names:\n  - name: x\n")); !errors.Is(err, ErrEmptyID) {
		t.Fatalf("missing id: want ErrEmptyID, got %v", err)
	}
	if _, err := parseNames([]byte("names:\n  - id: x\n    colour: red\n")); err == nil {
		t.Fatal("unknown key should be rejected")
	}
	if entries, err := parseNames(nil); err != nil || len(entries) != 0 {
		t.Fatalf("empty file: got (%v,%v)", entries, err)
	}
}

func TestRewrite(t *testing.T) {
	logger = zap.NewNop()
	entries, err := parseNames([]byte(namesYAML))
	if err != nil {
		t.Fatalf("parseNames: %v", err)
	}
	ns := renamed.MustNew(renamed.WithLogger(zap.NewNop()))
	leaves, err := register(ns, entries)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	in := strings.Join([]string{
		"user 8c1f07a2-5b1e-4c3a-9f0d-2a6b7c8d9e0f logged in",
		"3f2a9c41-0000-4000-8000-000000000000 paid deadbeefcafe",
		"nothing to see",
	}, "\n")
	var out bytes.Buffer
	if err := rewrite(ns, leaves, strings.NewReader(in), &out); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	want := strings.Join([]string{
		"user ⟪U|8c1f07a2|alice⟫ logged in",
		"⟪U|bob⟫ paid ⟪H|deadbe⟫",
		"nothing to see",
	}, "\n") + "\n"
	if out.String() != want {
		t.Fatalf("rewrite output:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestRewriteCommand(t *testing.T) {
	dir := t.TempDir()
	names := filepath.Join(dir, "names.yaml")
	if err := os.WriteFile(names, []byte(namesYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfg, []byte("open: \"<\"\nclose: \">\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader("id=deadbeefcafe\n"))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"rewrite", "--names", names, "--config", cfg})
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		namesPath, configPath = "", ""
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := out.String(); got != "id=<H|deadbe>\n" {
		t.Fatalf("command output = %q", got)
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if strings.TrimSpace(out.String()) != version {
		t.Fatalf("version output = %q", out.String())
	}
}
