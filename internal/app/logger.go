package app

import (
	"fmt"
	"io"
	"time"

	"github.com/ark-lens/icongen/internal/render"
	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the component-tagged logger shared by every package.
type Logger = render.Logger

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct {
	w   io.Writer
	now func() time.Time
}

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w, now: time.Now} }

// NewRotatingFileLogger logs to path, rotating once the file passes 1 MB.
// The returned closer releases the file.
func NewRotatingFileLogger(path string) (FileLogger, io.Closer) {
	out := &lj.Logger{Filename: path, MaxSize: 1, MaxBackups: 3}
	return NewFileLogger(out), out
}

func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	l.write("INFO", component, format, args...)
}

func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	l.write("ERROR", component, format, args...)
}

func (l FileLogger) write(level, component, format string, args ...interface{}) {
	now := time.Now
	if l.now != nil {
		now = l.now
	}
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(l.w, now().Format(time.RFC3339)+" ["+level+"] "+component+": "+msg+"\n")
}
