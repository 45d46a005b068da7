// Package nospace solves the "No Space Left On Device" puzzle.
//
// It parses a shell transcript of cd/ls commands, replays it against an
// in-memory directory tree stored as an arena of directory records, and
// answers two questions over the sizes of every directory in that tree.
package nospace
