// Package token provides character-level scanning and string quoting for
// jot documents. The Scanner yields significant characters with one step
// of pushback and decodes quoted strings; Quote renders strict JSON string
// literals. Grammar lives in package parse, on top of these primitives.
package token
