// Package css tokenizes and parses CSS stylesheets without ever rejecting
// input. Unterminated constructs run to the end of the input, junk between
// rules is skipped, and whatever can be read as a rule is returned. The
// parser covers type, class, id and universal selectors plus the four
// combinators; at-rules and attribute selectors tokenize but do not parse.
package css
