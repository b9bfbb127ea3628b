package logging

import (
	"os"

	"github.com/fatih/color"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogOpts struct {
	Verbose bool
	Color   string
	// Encoding is "console" or "json".
	Encoding string
}

var levelColours = map[zapcore.Level]*color.Color{
	zapcore.DebugLevel: color.New(color.FgMagenta),
	zapcore.InfoLevel:  color.New(color.FgHiGreen),
	zapcore.WarnLevel:  color.New(color.FgHiYellow, color.Bold),
	zapcore.ErrorLevel: color.New(color.FgHiRed, color.Bold),
	zapcore.FatalLevel: color.New(color.FgHiRed, color.Bold),
}

func (opts LogOpts) useColor() bool {
	switch opts.Color {
	case "always", "on":
		return true
	case "never", "off":
		return false
	}
	return !color.NoColor
}

func (opts LogOpts) encoder() zapcore.Encoder {
	if opts.Encoding == "json" {
		if opts.Verbose {
			return zapcore.NewJSONEncoder(zap.NewDevelopmentEncoderConfig())
		}
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = nil
	cfg.EncodeCaller = nil
	if opts.useColor() {
		cfg.EncodeLevel = func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			c, ok := levelColours[l]
			if !ok {
				c = levelColours[zapcore.ErrorLevel]
			}
			enc.AppendString(c.Sprint(l.CapitalString()))
		}
	} else {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return zapcore.NewConsoleEncoder(cfg)
}

// NewLogger builds the CLI logger. Warnings and errors latch the supplied
// flags so the command can choose its exit status after the run.
func (opts LogOpts) NewLogger(hadWarnings *atomic.Bool, hadErrors *atomic.Bool) *zap.Logger {
	level := zapcore.InfoLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(opts.encoder(), zapcore.Lock(os.Stderr), level)
	return zap.New(&latchCore{Core: core, hadWarnings: hadWarnings, hadErrors: hadErrors})
}

type latchCore struct {
	zapcore.Core
	hadWarnings *atomic.Bool
	hadErrors   *atomic.Bool
}

func (c *latchCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *latchCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	if ent.Level >= zapcore.WarnLevel && c.hadWarnings != nil {
		c.hadWarnings.Store(true)
	}
	if ent.Level >= zapcore.ErrorLevel && c.hadErrors != nil {
		c.hadErrors.Store(true)
	}
	return c.Core.Write(ent, fields)
}

func (c *latchCore) With(fields []zapcore.Field) zapcore.Core {
	return &latchCore{Core: c.Core.With(fields), hadWarnings: c.hadWarnings, hadErrors: c.hadErrors}
}
