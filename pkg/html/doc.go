// Package html tokenizes and parses HTML without ever rejecting input.
// Truncated tags, unterminated comments and stray end tags all degrade to
// best-effort tokens and nodes. The parser nests elements by case-sensitive
// tag name matching only: nothing is auto-closed, mismatched end tags
// survive as literal text, and tag names are kept exactly as written.
package html
