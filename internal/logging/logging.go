// Package logging builds the process zap logger and adapts it to the
// engine's stage logger.
package logging

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"aiscore/internal/aidetect"
	"aiscore/internal/config"
)

// New builds a zap logger writing to stderr, so stdout stays free for
// command output.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	var zc zap.Config
	switch strings.ToLower(cfg.Format) {
	case "json":
		zc = zap.NewProductionConfig()
	case "console", "":
		zc = zap.NewDevelopmentConfig()
		zc.Development = false
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true
	zc.Sampling = nil

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

type stageLogger struct {
	z *zap.Logger
}

// Stage adapts z to aidetect.Logger. ANALYSIS lines are logged at info and
// RISK lines at warn; the detail string is split into key=value fields.
func Stage(z *zap.Logger) aidetect.Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return stageLogger{z: z.Named("engine")}
}

func (l stageLogger) Log(level, stage, message, detail string) {
	fields := append([]zap.Field{zap.String("stage", stage)}, detailFields(detail)...)
	switch strings.ToUpper(level) {
	case "DEBUG":
		l.z.Debug(message, fields...)
	case "RISK", "WARN":
		l.z.Warn(message, fields...)
	case "ERROR":
		l.z.Error(message, fields...)
	default:
		l.z.Info(message, fields...)
	}
}

// detailFields turns `a=1 b="x y"` into fields. Quoted values are Go-quoted
// (as written by %q) and may hold spaces, '=' and escaped quotes. Tokens
// without '=' are kept under "detail".
func detailFields(detail string) []zap.Field {
	detail = strings.TrimSpace(detail)
	if detail == "" {
		return nil
	}
	var (
		out  []zap.Field
		rest []string
	)
	for _, tok := range splitDetail(detail) {
		k, v, ok := strings.Cut(tok, "=")
		if !ok || k == "" {
			rest = append(rest, tok)
			continue
		}
		out = append(out, zap.String(k, unquote(v)))
	}
	if len(rest) > 0 {
		out = append(out, zap.String("detail", strings.Join(rest, " ")))
	}
	return out
}

func unquote(v string) string {
	if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
		if u, err := strconv.Unquote(v); err == nil {
			return u
		}
		return v[1 : len(v)-1]
	}
	return v
}

// splitDetail splits on spaces outside double quotes. A backslash inside
// quotes escapes the next rune.
func splitDetail(s string) []string {
	var (
		out     []string
		cur     strings.Builder
		quoted  bool
		escaped bool
	)
	for _, r := range s {
		switch {
		case escaped:
			escaped = false
			cur.WriteRune(r)
		case r == '\\' && quoted:
			escaped = true
			cur.WriteRune(r)
		case r == '"':
			quoted = !quoted
			cur.WriteRune(r)
		case r == ' ' && !quoted:
			if cur.Len() > 0 {
				out = append(out, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}
