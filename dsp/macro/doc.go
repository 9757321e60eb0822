// Package macro maps the Amount and Tilt macro controls onto the per-band
// settings of the multiband engine: compressor threshold, ratio and knee,
// envelope time constants, saturation drive, and compensation EQ targets.
//
// [Mapper.Map] is evaluated once per block. Everything it returns is
// constant for the block, so the sample loop only reads precomputed fields.
package macro
