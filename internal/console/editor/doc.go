// Package editor provides the terminal line editor used when the exercise
// console runs on a TTY: tab completion over exercise names, history
// navigation, and a styled prompt.
package editor
