// Package token tokenizes jot documents.
//
// The jot grammar is the JSON value grammar with two relaxations: `//`
// line comments are trivia, and `\/` is accepted wherever `/` is. The
// tokenizer is error-tolerant: it records what it could not read and
// keeps going, so callers always get a token stream to work with. The
// returned error, if any, joins every problem found with its position.
package token
