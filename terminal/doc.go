// Package terminal renders the fireworks field into a tcell screen.
//
// The screen is treated as a pixel raster two pixels tall per cell: each cell
// draws the upper-half block with the upper pixel as foreground and the lower
// pixel as background. Frames are faded rather than cleared, which leaves
// motion-blur trails behind moving particles.
package terminal
