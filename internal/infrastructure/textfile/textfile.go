package textfile

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// Source reads restaurant records from a text file, one record per line.
type Source struct {
	Path string
}

func New(path string) *Source { return &Source{Path: path} }

// Lines returns every line of the file with line endings removed.
func (s *Source) Lines(ctx context.Context) ([]string, error) {
	if strings.TrimSpace(s.Path) == "" {
		return nil, fmt.Errorf("restaurants file path is empty")
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	return lines, nil
}
