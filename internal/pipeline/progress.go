package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// NoOpProgressCallback implements ProgressCallback but does nothing.
type NoOpProgressCallback struct{}

func (NoOpProgressCallback) OnStart(total int)               {}
func (NoOpProgressCallback) OnProgress(processed, total int) {}
func (NoOpProgressCallback) OnComplete()                     {}

// ConsoleProgressCallback displays a progress bar on the console.
type ConsoleProgressCallback struct {
	writer         io.Writer
	prefix         string
	width          int
	lastUpdate     time.Time
	updateInterval time.Duration
	mutex          sync.Mutex
	startTime      time.Time
	showRate       bool
}

// NewConsoleProgressCallback creates a new console progress reporter.
func NewConsoleProgressCallback(writer io.Writer, prefix string) *ConsoleProgressCallback {
	if writer == nil {
		writer = os.Stderr
	}
	return &ConsoleProgressCallback{
		writer:         writer,
		prefix:         prefix,
		width:          50,
		updateInterval: 100 * time.Millisecond,
		showRate:       true,
	}
}

// WithWidth sets the progress bar width.
func (c *ConsoleProgressCallback) WithWidth(width int) *ConsoleProgressCallback {
	c.width = width
	return c
}

// WithUpdateInterval sets how frequently the progress bar updates.
func (c *ConsoleProgressCallback) WithUpdateInterval(interval time.Duration) *ConsoleProgressCallback {
	c.updateInterval = interval
	return c
}

func (c *ConsoleProgressCallback) OnStart(total int) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.startTime = time.Now()
	c.lastUpdate = time.Time{}

	_, _ = fmt.Fprintf(c.writer, "%s0/%d (0.0%%)\n", c.prefix, total)
}

func (c *ConsoleProgressCallback) OnProgress(processed, total int) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := time.Now()
	if now.Sub(c.lastUpdate) < c.updateInterval && processed < total {
		return
	}
	c.lastUpdate = now

	c.drawProgressBar(processed, total, now)
}

func (c *ConsoleProgressCallback) OnComplete() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	elapsed := time.Since(c.startTime)
	_, _ = fmt.Fprintf(c.writer, "\n%sCompleted in %v\n", c.prefix, elapsed.Round(time.Millisecond))
}

func (c *ConsoleProgressCallback) drawProgressBar(processed, total int, now time.Time) {
	if total == 0 {
		return
	}

	percent := float64(processed) / float64(total) * 100.0
	filled := int(float64(c.width) * float64(processed) / float64(total))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", c.width-filled)
	status := fmt.Sprintf("\r%s[%s] %d/%d (%.1f%%)", c.prefix, bar, processed, total, percent)

	elapsed := now.Sub(c.startTime)
	if c.showRate && elapsed > 0 && processed > 0 {
		rate := float64(processed) / elapsed.Seconds()
		status += fmt.Sprintf(" %.1f/s", rate)
	}

	_, _ = fmt.Fprint(c.writer, status)
}

// LogProgressCallback logs progress updates using slog.
type LogProgressCallback struct {
	logger    *slog.Logger
	level     slog.Level
	prefix    string
	interval  int // Log every N items
	lastLog   int
	startTime time.Time
}

// NewLogProgressCallback creates a new log-based progress reporter.
func NewLogProgressCallback(logger *slog.Logger, level slog.Level, prefix string) *LogProgressCallback {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogProgressCallback{
		logger:   logger,
		level:    level,
		prefix:   prefix,
		interval: 10,
	}
}

// WithInterval sets how frequently to log progress (every N items).
func (l *LogProgressCallback) WithInterval(interval int) *LogProgressCallback {
	l.interval = interval
	return l
}

func (l *LogProgressCallback) OnStart(total int) {
	l.startTime = time.Now()
	l.lastLog = 0
	l.logger.Log(nil, l.level, l.prefix+"Starting detection", "total", total)
}

func (l *LogProgressCallback) OnProgress(processed, total int) {
	if processed-l.lastLog >= l.interval || processed == total {
		l.lastLog = processed
		percent := float64(processed) / float64(total) * 100.0
		elapsed := time.Since(l.startTime)
		rate := float64(processed) / elapsed.Seconds()

		l.logger.Log(nil, l.level, l.prefix+"Progress update",
			"processed", processed,
			"total", total,
			"percent", fmt.Sprintf("%.1f", percent),
			"rate", fmt.Sprintf("%.1f/s", rate),
			"elapsed", elapsed.Round(time.Millisecond),
		)
	}
}

func (l *LogProgressCallback) OnComplete() {
	elapsed := time.Since(l.startTime)
	l.logger.Log(nil, l.level, l.prefix+"Detection completed", "elapsed", elapsed.Round(time.Millisecond))
}
