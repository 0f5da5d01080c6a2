package app

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Record is the `record` command: it captures global input into a session
// file until interrupted.
func Record(path string) {
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating session: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, stopping recording...")
		cancel()
	}()

	src := StartHookSource(nil, 1024)
	defer src.Close()

	fmt.Printf("Recording to %s (Ctrl+C to stop)...\n", path)
	start := time.Now()
	count := 0
	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()
	for {
		for {
			ev, ok := src.TryNext()
			if !ok {
				break
			}
			line, err := EncodeEvent(ev, time.Since(start))
			if err != nil {
				logger.Warnf("record: %v", err)
				continue
			}
			fmt.Fprintln(w, line)
			count++
		}

		select {
		case <-ctx.Done():
			fmt.Printf("Recorded %d events.\n", count)
			return
		case <-tick.C:
		}
	}
}
