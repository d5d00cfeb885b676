// Package lineart approximates grayscale images with a single line that
// follows a Hilbert curve across the image and wiggles harder where the image
// is darker.
//
// # Pipeline
//
// [Trace] runs the following steps, each of which is also exported:
//
//   - [HilbertCurve] generates the curve in the unit square.
//   - [CropToScale] fits it to the image's frame and drops lines outside of it.
//   - [SmoothCorners] optionally replaces corners with quadratic Bézier arcs.
//   - [Partition] cuts lines into pieces of bounded length, which are the unit
//     at which the image is sampled.
//   - [EstimateThickness] derives a stroke width for every piece from the mean
//     brightness underneath it, sampled bilinearly with [Grid.Sample].
//   - A [Renderer] turns pieces and widths into zero-width lines that can be
//     drawn with any line rasterizer.
//
// The geometric steps are expressed as [Stage] values, selected by [Config].
//
// # Thickness
//
// All thicknesses are relative to [MaxThickness], the width at which the
// entire curve, drawn solid, would cover the frame exactly once. A black
// region produces lines of that width, a white region lines of width zero.
//
// # Renderers
//
// [Zigzag] and [Sine] render each line on its own. [ContinuousSine] runs a
// single wave along the entire path whose phase depends on arc length, so that
// there are no seams where lines meet, and leaves lines thinner than one unit
// out entirely.
//
// # Coordinates
//
// Coordinates are in pixels, y-down, with pixel (i, j) located at the integer
// point (i, j). A line's [Line.Normal] is its direction rotated by ⟨y, −x⟩;
// all renderers offset relative to it.
package lineart
