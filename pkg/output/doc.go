// Package output renders command results for the terminal.
//
// Results go through a text/template from templates/ first. Templates
// call the "style" function with a semantic style name:
//
//	{{style "Applied" .Step}}
//
// Style names map to lipgloss styles defined in styles.yaml with adaptive
// light/dark colors. In FormatText the style function returns its input
// unchanged, in FormatJSON templates are bypassed and results are encoded
// as JSON.
package output
