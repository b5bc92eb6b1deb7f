// Package raster provides the compact, multi-band integer pixel buffer that
// grid's edge weighers operate on.
//
// What:
//
//   - Raster holds Width*Height*Bands bytes, row-major, band-interleaved.
//   - FromImage converts a decoded image.Image (grayscale or RGB-ish) into a
//     Raster; decoding itself (JPEG/PNG/etc.) stays an external concern per
//     the segmentation tool's scope.
//   - Gray derives a single-band luminance Raster by averaging all input
//     bands with equal weight, the exact construction the grayscale edge
//     weigher needs.
//
// Why:
//
//   - Edge weighers (grid.GrayscaleWeigher, grid.ColorWeigher) are specified
//     directly against per-band intensity samples (§4.5); a raw
//     image.Image's pluralistic color-model interface would make that
//     kind of arithmetic (sums, differences, clamping) awkward to
//     state precisely. A flat byte buffer does not.
package raster
