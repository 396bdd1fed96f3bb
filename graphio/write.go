// SPDX-License-Identifier: MIT
//
// File: write.go
// Role: schedule files and adjacency-JSON encoding.

package graphio

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/pandemaniac/core"
	"github.com/pkg/errors"
	"github.com/tidwall/sjson"
)

// ScheduleExt is the extension of seed schedule files.
const ScheduleExt = ".txt"

// OutputPath names the schedule file for a strategy tag:
// <dir>/<game>_<tag>.txt, tag lower-cased.
func OutputPath(dir, graphPath, tag string) string {
	return filepath.Join(dir, GameName(graphPath)+"_"+strings.ToLower(tag)+ScheduleExt)
}

// WriteSchedule writes one ID per line, each line terminated by '\n'.
func WriteSchedule(w io.Writer, ids []string) error {
	bw := bufio.NewWriter(w)
	for _, id := range ids {
		if _, err := bw.WriteString(id); err != nil {
			return errors.Wrap(err, "write schedule")
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "write schedule")
		}
	}

	return errors.Wrap(bw.Flush(), "flush schedule")
}

// SaveSchedule writes ids to path, creating or truncating it. The file is
// written next to its final name and renamed into place, so a failed run
// never leaves a truncated schedule behind.
func SaveSchedule(path string, ids []string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(err, "create schedule %s", path)
	}
	defer os.Remove(tmp.Name())

	if err := WriteSchedule(tmp, ids); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "save schedule %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close schedule %s", path)
	}

	return errors.Wrapf(os.Rename(tmp.Name(), path), "rename schedule %s", path)
}

// WriteGraph encodes g as an adjacency document: vertices in graph order,
// each mapped to its neighbor list. ReadGraph(WriteGraph(g)) reproduces the
// vertex order and edge set of g.
func WriteGraph(w io.Writer, g *core.Graph) error {
	if g == nil {
		return core.ErrNilGraph
	}
	doc := []byte("{}")
	for _, id := range g.Vertices() {
		nbs, err := g.NeighborIDs(id)
		if err != nil {
			return errors.Wrapf(err, "neighbors of %s", id)
		}
		if doc, err = sjson.SetBytes(doc, escapeKey(id), nbs); err != nil {
			return errors.Wrapf(err, "encode %s", id)
		}
	}
	doc = append(doc, '\n')
	_, err := w.Write(doc)

	return errors.Wrap(err, "write graph")
}

// SaveGraph writes g to path.
func SaveGraph(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create graph %s", path)
	}
	if err := WriteGraph(f, g); err != nil {
		f.Close()
		return errors.Wrapf(err, "save graph %s", path)
	}

	return errors.Wrapf(f.Close(), "close graph %s", path)
}

// escapeKey turns a vertex ID into a single-component sjson path. Every ASCII
// character that is not a letter or digit is backslash-escaped, which makes
// path syntax ('.', '*', '?', '|', '#', '@', ':') literal.
func escapeKey(id string) string {
	var b strings.Builder
	b.Grow(len(id) * 2)
	for _, r := range id {
		if r < 0x80 && !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}

	return b.String()
}
