// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record with the
// level name colored according to the color profile of the output,
// followed by the message and the attributes as key=value pairs.
type Handler struct {
	opts   slog.HandlerOptions
	out    *termenv.Output
	mu     *sync.Mutex
	attrs  string
	prefix string
}

// NewHandler returns a new [Handler] that writes to the given writer.
// The color profile is detected from the writer unless it is given
// in the output options (for example with [termenv.WithProfile]).
// A nil opts uses [UserLevel] as the minimum level.
func NewHandler(w io.Writer, opts *slog.HandlerOptions, oopts ...termenv.OutputOption) *Handler {
	h := &Handler{out: termenv.NewOutput(w, oopts...), mu: &sync.Mutex{}}
	if opts != nil {
		h.opts = *opts
	}
	if h.opts.Level == nil {
		h.opts.Level = &UserLevel
	}
	return h
}

// SetDefaultLogger sets the default [slog] logger to a [Handler]
// that writes to [os.Stderr] at the current [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, nil)))
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.levelString(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.prefix, a)
		return true
	})
	b.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&b, h.prefix, a)
	}
	nh.attrs = b.String()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix = h.prefix + name + "."
	return &nh
}

// levelString returns the colored name of the given level.
func (h *Handler) levelString(level slog.Level) string {
	s := level.String()
	var c termenv.Color
	switch {
	case level >= slog.LevelError:
		c = termenv.ANSIRed
	case level >= slog.LevelWarn:
		c = termenv.ANSIYellow
	case level >= slog.LevelInfo:
		c = termenv.ANSICyan
	default:
		c = termenv.ANSIBrightBlack
	}
	return h.out.String(s).Foreground(h.out.Convert(c)).Bold().String()
}

// appendAttr appends the given attribute as " key=value",
// flattening groups into dotted keys.
func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		gp := prefix
		if a.Key != "" {
			gp += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, gp, ga)
		}
		return
	}
	v := a.Value.String()
	if v == "" || strings.ContainsAny(v, " \t\n\"=") {
		v = strconv.Quote(v)
	}
	fmt.Fprintf(b, " %s%s=%s", prefix, a.Key, v)
}
