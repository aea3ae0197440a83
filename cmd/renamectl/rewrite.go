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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"dirpx.dev/renamed"
	"dirpx.dev/renamed/apis"
	"dirpx.dev/renamed/config"
)

var namesPath string

var rewriteCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "Rewrite identifiers on stdin",
	Args:  cobra.NoArgs,
	RunE:  runRewrite,
}

// ErrEmptyID is returned for a names entry without an id.
var ErrEmptyID = errors.New("renamectl: names entry without id")

// entry is one identifier of the names file.
type entry struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Prefix string `yaml:"prefix"`
	Length int    `yaml:"length"`
	Short  bool   `yaml:"short"`
}

type namesFile struct {
	Names []entry `yaml:"names"`
}

// token is an identifier as it appears in text. Its debug text is the raw
// identifier, so it is replaced wherever it occurs.
type token struct {
	id     string
	prefix string
	length int
}

func (t token) String() string      { return t.id }
func (t token) DebugString() string { return t.id }

func (t token) Shortener() *apis.Shortener {
	if t.length <= 0 {
		return nil
	}
	return &apis.Shortener{Length: t.length, Prefix: t.prefix}
}

func parseNames(data []byte) ([]entry, error) {
	var f namesFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("renamectl: decode names: %w", err)
	}
	for i, e := range f.Names {
		if e.ID == "" {
			return nil, fmt.Errorf("%w (entry %d)", ErrEmptyID, i)
		}
	}
	return f.Names, nil
}

// register names every entry in ns and returns the leaves to substitute.
func register(ns *renamed.Namespace, entries []entry) ([]apis.AnyNameable, error) {
	leaves := make([]apis.AnyNameable, 0, len(entries))
	for _, e := range entries {
		t := token{id: e.ID, prefix: e.Prefix, length: e.Length}
		var err error
		switch {
		case e.Name == "":
			_, err = ns.SetShort(t)
		case e.Short:
			_, err = ns.SetNameAndShort(t, e.Name)
		default:
			_, err = ns.SetName(t, e.Name)
		}
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, apis.Erase(t))
	}
	return leaves, nil
}

// rewrite copies r to w line by line, substituting the names of leaves.
func rewrite(ns *renamed.Namespace, leaves []apis.AnyNameable, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	bw := bufio.NewWriter(w)
	lines := 0
	for sc.Scan() {
		if _, err := fmt.Fprintln(bw, ns.Render(sc.Text(), leaves, renamed.Compact)); err != nil {
			return err
		}
		lines++
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("renamectl: read input: %w", err)
	}
	logger.Debug("rewrite finished", zap.Int("lines", lines), zap.Int("names", len(leaves)))
	return bw.Flush()
}

func loadConfig() (apis.Config, error) {
	if configPath == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(configPath)
}

func runRewrite(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(namesPath)
	if err != nil {
		return fmt.Errorf("renamectl: read names: %w", err)
	}
	entries, err := parseNames(data)
	if err != nil {
		return err
	}

	ns, err := renamed.New(renamed.WithConfig(cfg), renamed.WithLogger(logger))
	if err != nil {
		return err
	}
	leaves, err := register(ns, entries)
	if err != nil {
		return err
	}
	logger.Debug("names loaded", zap.String("path", namesPath), zap.Int("count", len(leaves)))
	return rewrite(ns, leaves, cmd.InOrStdin(), cmd.OutOrStdout())
}
