// Package gomap converts arbitrary Go values into the jot value model.
//
// Wrap is the entry point for best-effort normalization: model values pass
// through, primitives and containers convert recursively, and anything
// unrepresentable becomes absence (nil) rather than an error. Host types
// take control of their conversion by implementing Noder or registering a
// converter with Register; otherwise structs convert through their
// exported fields.
package gomap
