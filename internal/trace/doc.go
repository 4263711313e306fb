// Package trace provides the tracing subsystem used by the AST loader and
// the vhdlast CLI.
//
// Tracing is off unless a tracer is attached to the context. Loads open a
// pass span per phase (read, decode, index), a library span per indexed
// library and, at debug level, one point per decoded node.
//
// # Usage
//
//	vhdlast dump --trace=- --trace-level=detail design.ast.jsonl
//
// # Tracers
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr), text or NDJSON
//   - RingTracer: circular buffer, dumped when a load fails
//   - MultiTracer: fan-out to several tracers
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: warnings and failures only
//   - LevelPhase: driver and pass boundaries
//   - LevelDetail: per-library events
//   - LevelDebug: everything including node-level points
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "decode", parentID)
//	defer span.End("")
package trace
