// SPDX-License-Identifier: Unlicense OR MIT

/*
Package circle implements the state and geometry of a circular progress
indicator.

A ProgressCircle stores a value in the range [0, 100] together with its
style, and draws an arc proportional to the value onto a Canvas, with a
label centered inside it. Rendering backends implement Canvas; see the
raster package for an image backend and the widget package for Gio.

All methods must be called from the goroutine that owns the rendering
loop. Mutators take effect immediately and mark the circle for redraw;
the Invalidator, if any, is notified once until the next Draw.
*/
package circle
