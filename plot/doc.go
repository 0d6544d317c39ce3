// Package plot implements the plotting surface: a packed-RGB pixel buffer, the mapping between pixel
// space and math space, and the rasterizers that draw axes, the reference grid and a function curve.
//
// The package has no host dependency. A Surface is drawn into by the frame loop and its pixels are
// handed to whatever display presents them.
package plot
