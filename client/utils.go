package client

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// readLineFromFile collects words until the braces of the item balance. At
// the end of input it waits for more to be written, like tail -f.
func readLineFromFile(ctx context.Context, file io.Reader) ([]string, error) {
	var line []string
	depth, opened := 0, false
	for {
		var oneWord string
		n, err := fmt.Fscan(file, &oneWord)
		if err != nil && err != io.EOF {
			return nil, err
		}

		if n != 0 {
			line = append(line, oneWord)
			depth += strings.Count(oneWord, "{") - strings.Count(oneWord, "}")
			opened = opened || strings.Contains(oneWord, "{")
			// Item ends with its closing }
			if opened && depth <= 0 {
				return line, nil
			}
			continue
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Second):
		}
	}
}

// SubscribeToFileInput streams "<clientId> <item>" lines read from input
// until ctx is done or reading fails.
func SubscribeToFileInput(ctx context.Context, input io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		defer close(lines)
		for {
			words, err := readLineFromFile(ctx, input)
			if err != nil {
				if ctx.Err() == nil {
					errChan <- err
				}
				return
			}
			select {
			case lines <- strings.Join(words, " "):
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines, errChan
}

func setInterval(function func(), interval time.Duration) *time.Ticker {
	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			function()
		}
	}()
	return ticker
}
