// Package codec serializes probe state.
//
// Two encodings are provided:
//
//   - Canonical JSON through internal/ir. Floats become hex bit-pattern
//     strings, so every value, including NaN payloads and signed zeros,
//     round-trips bit for bit.
//   - Class-file constant-pool entries: a one-byte tag followed by the
//     big-endian value bytes (Integer=3, Float=4, Long=5, Double=6).
//
// Matrices must be rectangular. Decoders validate shape, tags and length and
// return a *CodecError describing the first problem found.
package codec
