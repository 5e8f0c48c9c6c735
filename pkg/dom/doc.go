// Package dom models the host page a form is rendered into. Documents are
// golang.org/x/net/html trees; selectors resolve through cascadia the way a
// browser's querySelector would, and style blocks are appended to <head>.
package dom
