// Package intdelta implements a two-stage codec for the index-heavy
// structural sections of a binary scene-description container: parent
// pointers, child spans, field indices and path references.
//
// Stage 1 is a variable-width delta/mode encoder (encode.go/decode.go): each
// 32-bit value is differenced against its predecessor, the single most
// common delta is pulled out into a one-time header, and every element is
// tagged with a 2-bit mode selecting how many payload bytes its (non-common)
// delta needs. Stage 2 hands the resulting intermediate buffer to a
// pluggable byte-stream compressor (compressor.go) — by default
// github.com/pierrec/lz4/v4 — which mops up the redundancy the common-delta
// runs leave behind.
//
// The package keeps no state between calls: every exported function is pure
// with respect to package-level mutable state and safe for concurrent use
// on disjoint buffers. Two concurrent calls must not share the same
// workingSpace slice.
package intdelta
