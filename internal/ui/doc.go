// package ui implements the interactive terminal browser for the media
// index: a playlist list that drills down into the ordered member view.
package ui
