// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for persistence (Save/Load/
// LoadMapped/Encode/Decode). This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that layers setters over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global mutable state.
//   - Silent by default: the library logs nothing unless WithLogger is given.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"encoding/binary"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

// DefaultByteOrder is the byte order of the binary file format: the host's
// native order, matching a raw memory dump of the header and elements.
var DefaultByteOrder binary.ByteOrder = binary.NativeEndian

// ---------- Internal panic messages (no magic strings) ----------

const panicByteOrderNil = "matrix: WithByteOrder: order must be non-nil"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	byteOrder binary.ByteOrder // DefaultByteOrder
	logger    *zap.Logger      // zap.NewNop()
}

// WithByteOrder sets the byte order used for the header and element payload.
// Both ends of a round-trip must agree on the order; the file carries no marker.
//
// Panics when order is nil.
func WithByteOrder(order binary.ByteOrder) Option {
	if order == nil {
		panic(panicByteOrderNil)
	}

	return func(o *Options) { o.byteOrder = order }
}

// WithLogger routes debug records for persistence calls to l
// (path, shape, byte count). A nil logger restores the silent default.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		l = zap.NewNop()
	}

	return func(o *Options) { o.logger = l }
}

// defaultOptions returns the zero-configuration Options.
func defaultOptions() Options {
	return Options{
		byteOrder: DefaultByteOrder,
		logger:    zap.NewNop(),
	}
}

// gatherOptions applies opts on top of defaults, skipping nil setters.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// ByteOrder reports the effective byte order.
func (o Options) ByteOrder() binary.ByteOrder { return o.byteOrder }

// Logger reports the effective logger.
func (o Options) Logger() *zap.Logger { return o.logger }

// NewOptions resolves opts into an Options value; useful for callers that
// want to inspect the effective configuration.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }
