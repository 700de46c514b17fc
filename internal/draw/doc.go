// Package draw holds the surfaces frames are replayed onto.
//
// Both surfaces implement core.Surface and scale.Element: raster renders to an
// RGBA image at the display's pixel ratio, cells renders to a terminal
// character buffer.
package draw
