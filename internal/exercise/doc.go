// Package exercise keeps an ordered registry of named, runnable course
// exercises and the prefix completer the interactive console uses over it.
package exercise
