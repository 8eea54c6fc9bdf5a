// Package adapter contains infrastructure adapters for the lfichef CLI.
package adapter

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	m "lfichef.dev/pkg/lfichef/internal/model"
)

// WordlistAdapter abstracts wordlist IO so the domain layer never touches
// the disk directly. Lines are streamed in both directions because generate
// mode can fan a small input out into hundreds of thousands of lines.
type WordlistAdapter interface {
	// StreamLines reads the wordlist at path, trims each line and skips
	// blanks. The line channel closes at EOF or cancellation; the error
	// channel carries at most one error.
	StreamLines(ctx context.Context, path m.Path) (<-chan m.RawPath, <-chan error)

	// WriteLines writes each received string as one line to path, creating
	// or truncating the file. It returns the number of lines written.
	WriteLines(ctx context.Context, path m.Path, lines <-chan string) (int, error)

	// DefaultOutFile names the output wordlist when the user gave none.
	DefaultOutFile(os m.TargetOS, now time.Time) m.Path
}

// LocalWordlistAdapter is the disk-backed WordlistAdapter.
type LocalWordlistAdapter struct{}

// NewLocalWordlistAdapter constructs a LocalWordlistAdapter ready to be
// wired into the workflow.
func NewLocalWordlistAdapter() *LocalWordlistAdapter {
	return &LocalWordlistAdapter{}
}

// StreamLines reads path line by line.
func (a *LocalWordlistAdapter) StreamLines(ctx context.Context, path m.Path) (<-chan m.RawPath, <-chan error) {
	lines := make(chan m.RawPath, 1)
	errCh := make(chan error, 1)

	go func() {
		defer close(lines)
		defer close(errCh)

		file, err := os.Open(string(path))
		if err != nil {
			errCh <- fmt.Errorf("open wordlist: %w", err)
			return
		}

		defer func() {
			_ = file.Close()
		}()

		scanner := bufio.NewScanner(file)
		// Payload lines can grow well past bufio's default token size.
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			select {
			case <-ctx.Done():
				return
			case lines <- m.RawPath(line):
			}
		}

		if err := scanner.Err(); err != nil {
			errCh <- fmt.Errorf("read wordlist: %w", err)
		}
	}()

	return lines, errCh
}

// WriteLines consumes the channel and writes one line per string.
func (a *LocalWordlistAdapter) WriteLines(ctx context.Context, path m.Path, lines <-chan string) (int, error) {
	file, err := os.Create(string(path))
	if err != nil {
		return 0, fmt.Errorf("create output wordlist: %w", err)
	}

	writer := bufio.NewWriter(file)
	written := 0

	for line := range lines {
		if err := ctx.Err(); err != nil {
			_ = file.Close()
			return written, err
		}

		if _, err := writer.WriteString(line + "\n"); err != nil {
			_ = file.Close()
			return written, fmt.Errorf("write output wordlist: %w", err)
		}

		written++
	}

	if err := writer.Flush(); err != nil {
		_ = file.Close()
		return written, fmt.Errorf("flush output wordlist: %w", err)
	}

	if err := file.Close(); err != nil {
		return written, fmt.Errorf("close output wordlist: %w", err)
	}

	return written, nil
}

// DefaultOutFile places a timestamped wordlist in the working directory.
func (a *LocalWordlistAdapter) DefaultOutFile(targetOS m.TargetOS, now time.Time) m.Path {
	return m.Path(fmt.Sprintf("lfichef_%s_wordlist_%s.txt", targetOS, now.Format("15_04_05")))
}
