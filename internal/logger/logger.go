package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fatih/color"
)

// LogFilePath is the default log file, relative to the working directory.
const LogFilePath = "logs/sandbox.txt"

// Logger stores lines in memory for the in-game console, appends them to a file on disk and
// echoes them to the terminal with a colour per level. Debug lines are dropped unless enabled.
type Logger struct {
	mu      sync.Mutex
	lines   []string
	path    string
	debug   bool
	console io.Writer
}

var levelColors = map[string]*color.Color{
	"DEBUG": color.New(color.FgHiBlack),
	"INFO":  color.New(color.FgCyan),
	"WARN":  color.New(color.FgYellow),
	"ERROR": color.New(color.FgRed, color.Bold),
}

// New returns a Logger writing to path and ensures its directory exists. An empty path keeps
// lines in memory and on the console only.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{lines: make([]string, 0), path: path, console: color.Output}
}

// SetConsole redirects terminal echo; nil silences it.
func (l *Logger) SetConsole(w io.Writer) {
	l.mu.Lock()
	l.console = w
	l.mu.Unlock()
}

// SetDebug enables or drops Debugf output.
func (l *Logger) SetDebug(enabled bool) {
	l.mu.Lock()
	l.debug = enabled
	l.mu.Unlock()
}

// DebugEnabled reports whether Debugf output is kept.
func (l *Logger) DebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

// Log appends a plain line (e.g. console input). Each entry is prefixed with [timestamp].
func (l *Logger) Log(line string) {
	l.write("", line)
}

func (l *Logger) Debugf(format string, args ...any) {
	if !l.DebugEnabled() {
		return
	}
	l.write("DEBUG", fmt.Sprintf(format, args...))
}

func (l *Logger) Infof(format string, args ...any) {
	l.write("INFO", fmt.Sprintf(format, args...))
}

func (l *Logger) Warnf(format string, args ...any) {
	l.write("WARN", fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.write("ERROR", fmt.Sprintf(format, args...))
}

func (l *Logger) write(level, msg string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + msg
	if level != "" {
		stamped = "[" + ts + "] " + level + ": " + msg
	}

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	console := l.console
	l.mu.Unlock()

	if console != nil {
		if c, ok := levelColors[level]; ok {
			_, _ = c.Fprintln(console, stamped)
		} else {
			_, _ = fmt.Fprintln(console, stamped)
		}
	}

	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
