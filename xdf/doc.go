// Package xdf decodes Extensible Data Format (XDF) 1.0 files.
//
// See "XDF format specification": https://github.com/sccn/xdf/wiki/Specifications
//
// Parse takes the full contents of an XDF file as a byte slice and returns
// an XDFFile: a file-level header plus one Stream per distinct stream id
// found in the file, with sample timestamps synthesized from each stream's
// nominal sampling rate and corrected by piecewise-linear clock offset
// interpolation.
package xdf
