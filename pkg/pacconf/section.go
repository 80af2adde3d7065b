package pacconf

import (
	"bufio"
	"io"
	"strings"
)

// optionsSection is the reserved section holding global options.
const optionsSection = "options"

// section is one bracketed block and the values of every key in it, in file
// order.
type section struct {
	name   string
	keys   []string
	values map[string][]string
}

func (s *section) add(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = append(s.values[key], value)
}

// first returns the earliest value recorded for key.
func (s *section) first(key string) (string, bool) {
	vals := s.values[key]
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// all returns every value recorded for key.
func (s *section) all(key string) ([]string, bool) {
	vals, ok := s.values[key]
	return vals, ok
}

// registry keeps sections in order of first appearance. A repeated header
// reopens the existing section, so duplicate blocks merge.
type registry struct {
	order  []*section
	byName map[string]*section
}

func newRegistry() *registry {
	return &registry{byName: make(map[string]*section)}
}

func (r *registry) open(name string) (*section, bool) {
	if s, ok := r.byName[name]; ok {
		return s, true
	}
	s := &section{name: name, values: make(map[string][]string)}
	r.order = append(r.order, s)
	r.byName[name] = s
	return s, false
}

func (r *registry) get(name string) *section {
	return r.byName[name]
}

// maxLineLength bounds a single line, newline included. Longer lines fail
// the read with bufio.ErrTooLong.
const maxLineLength = 1024 * 1024

// scanLines calls fn for every line of rd that is neither blank nor a
// comment. Lines are passed trimmed.
func scanLines(rd io.Reader, fn func(line string)) error {
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fn(line)
	}
	return scanner.Err()
}

// parseHeader reports whether line is a section header and returns its name.
func parseHeader(line string) (string, bool) {
	if len(line) < 2 || line[0] != '[' || line[len(line)-1] != ']' {
		return "", false
	}
	return strings.TrimSpace(line[1 : len(line)-1]), true
}

// parseDirective splits line on its first '='.
func parseDirective(line string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), true
}
