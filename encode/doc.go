// Package encode emits strict JSON text from ir nodes, compact or
// pretty-printed by an indentation factor, with optional terminal colors.
package encode
