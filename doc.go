// Package clipfunc is a collection of convenience functions over lazily
// evaluated clips: frame range replacement, conditional per-frame
// selection by frame statistics and bookmark-relative frame counting.
//
// Clips are sequence.Sequence values; the decoding, resizing and
// statistics backends are passed explicitly by the caller (see packages
// source, scaler and metrics).
package clipfunc
