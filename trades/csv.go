package trades

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

// LoadCSV reads a trade list from a delimited text file: one return fraction
// per line (a trailing comma-separated row is also accepted, so numpy-style
// savetxt output loads unchanged). Files ending in .xz or .lzma are
// decompressed transparently.
func LoadCSV(path string) (TradeList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	switch {
	case strings.HasSuffix(path, ".xz"):
		if r, err = xz.NewReader(f); err != nil {
			return nil, fmt.Errorf("open xz stream %s: %w", path, err)
		}
	case strings.HasSuffix(path, ".lzma"):
		if r, err = lzma.NewReader(f); err != nil {
			return nil, fmt.Errorf("open lzma stream %s: %w", path, err)
		}
	}

	pool, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pool, nil
}

// Read parses trade values from r, one or more per line, comma separated.
// Blank lines are skipped. The result is validated for non-emptiness.
func Read(r io.Reader) (TradeList, error) {
	var pool TradeList

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		for _, field := range strings.Split(text, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad trade value %q", line, field)
			}
			pool = append(pool, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := pool.Validate(); err != nil {
		return nil, err
	}
	return pool, nil
}

// SaveCSV writes the pool in the companion persisted format, one value per
// line, no header.
func SaveCSV(path string, pool TradeList) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	for _, v := range pool {
		if _, err := w.WriteString(strconv.FormatFloat(v, 'g', -1, 64) + "\n"); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
