package cleaner

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
)

type (
	LineKind byte

	Stats struct {
		Lines      int
		Prefixed   int
		Reindented int
	}
)

const (
	Unchanged LineKind = iota
	NumericKey
	CamRotationKey
)

const Header = "%YAML 1.0\n---\n"

var (
	// A digit, then anything up to a colon on the same line.
	numericKeyRegex = regexp.MustCompile(`(?i)^\p{Nd}.*:`)

	camRotationKeyRegex = regexp.MustCompile(`(?i)^- cam_R_m2c:`)
)

func (k LineKind) String() string {
	switch k {
	case NumericKey:
		return "numeric-key"
	case CamRotationKey:
		return "cam-rotation-key"
	default:
		return "unchanged"
	}
}

func (s *Stats) Add(other Stats) {
	s.Lines += other.Lines
	s.Prefixed += other.Prefixed
	s.Reindented += other.Reindented
}

func (s *Stats) count(kind LineKind) {
	s.Lines += 1

	switch kind {
	case NumericKey:
		s.Prefixed += 1
	case CamRotationKey:
		s.Reindented += 1
	default:
	}
}

// RewriteLine transforms a single line, trailing newline included.
// Rules are tried in order and only the first match applies.
func RewriteLine(line, prefix string) (string, LineKind) {
	if numericKeyRegex.MatchString(line) {
		return prefix + line, NumericKey
	}

	if camRotationKeyRegex.MatchString(line) {
		return " " + line[1:], CamRotationKey
	}

	return line, Unchanged
}

// Rewrite writes the document header followed by every line of r transformed with prefix.
func Rewrite(r io.Reader, w io.Writer, prefix string) (stats Stats, err error) {
	bw := bufio.NewWriter(w)

	if _, err = bw.WriteString(Header); err != nil {
		return stats, fmt.Errorf("failed to write document header: %w", err)
	}

	br := bufio.NewReader(r)

	for {
		line, err1 := br.ReadString('\n')
		if len(line) > 0 {
			out, kind := RewriteLine(line, prefix)

			stats.count(kind)

			if _, err = bw.WriteString(out); err != nil {
				return stats, fmt.Errorf("failed to write line %d: %w", stats.Lines, err)
			}
		}

		if errors.Is(err1, io.EOF) {
			break
		} else if err1 != nil {
			return stats, fmt.Errorf("failed to read line %d: %w", stats.Lines+1, err1)
		}
	}

	if err = bw.Flush(); err != nil {
		return stats, fmt.Errorf("failed to flush rewritten contents: %w", err)
	}

	return stats, nil
}

// CleanFile rewrites the file at path in place.
// With dryRun the rewritten contents are computed and discarded.
func CleanFile(path, prefix string, dryRun bool) (stats Stats, err error) {
	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if err != nil {
		return stats, fmt.Errorf("failed to locate %q: %w", path, err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return stats, fmt.Errorf("failed to read %q: %w", path, err)
	}

	var buf bytes.Buffer

	buf.Grow(len(contents) + len(Header))

	stats, err = Rewrite(bytes.NewReader(contents), &buf, prefix)
	if err != nil {
		return stats, fmt.Errorf("failed to rewrite %q: %w", path, err)
	}

	if dryRun {
		return stats, nil
	}

	if err = os.WriteFile(path, buf.Bytes(), info.Mode().Perm()); err != nil {
		return stats, fmt.Errorf("failed to overwrite %q: %w", path, err)
	}

	return stats, nil
}
