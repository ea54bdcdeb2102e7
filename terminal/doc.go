// Package terminal hosts the field in a text terminal.
//
// The field is drawn with upper-half-block glyphs, two device pixels per cell,
// through render.CellSurface. Host translates tcell input into hub signals:
//   - resize becomes a logical viewport of 8x16 pixels per cell
//   - mouse motion becomes a spring-smoothed pointer
//   - focus loss becomes pointer leave, and optionally a visibility pause
//
// Terminals report no occlusion, so intersection is never signalled.
package terminal
