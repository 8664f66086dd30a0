// Package highscore stores the best score across sessions in a plain text
// file holding one decimal integer.
package highscore
