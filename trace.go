// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framed

// TraceFunc is a lightweight tracing hook for FramedRead and FramedWrite. It
// is called synchronously from the state machine at notable transitions, so
// it must not block and must not call back into the same FramedRead/
// FramedWrite. event is a short, stable name (e.g. "decode", "shift",
// "transport_read", "eof"); fields are alternating key/value pairs suitable
// for log/slog.Logger.Log or a structured log sink, following the same
// convention the rest of this module uses for its own diagnostic logging.
type TraceFunc func(event string, fields ...any)

// noopTrace is substituted whenever a FramedRead/FramedWrite is constructed
// without a Trace option, so call sites never need a nil check.
func noopTrace(string, ...any) {}

func traceOrNoop(fn TraceFunc) TraceFunc {
	if fn == nil {
		return noopTrace
	}
	return fn
}
