package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file is not an error.
func Read(fs afero.Fs, path string, maxLines int) ([]string, error) {
	file, err := fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Level is the severity token of a console log line.
type Level string

const (
	LevelUnknown Level = ""
	LevelDebug   Level = "DBG"
	LevelInfo    Level = "INF"
	LevelWarn    Level = "WRN"
	LevelError   Level = "ERR"
	LevelFatal   Level = "FTL"
)

// LevelOf finds the severity token in a zerolog console line such as
// "2024-03-10 10:00:00 INF wallpaper applied image=/a.jpg". Only the first
// few fields are inspected so message text cannot be mistaken for a level.
func LevelOf(line string) Level {
	fields := strings.Fields(line)
	if len(fields) > 4 {
		fields = fields[:4]
	}
	for _, f := range fields {
		switch lvl := Level(f); lvl {
		case LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal:
			return lvl
		}
	}
	return LevelUnknown
}
