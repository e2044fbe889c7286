/*
Package astc implements reading of the custom ASTC texture container:
a fixed 30-byte header (12-byte signature, 16-bit version, 64-bit
width and height, all little-endian) followed by the texture payload.

The payload is consumed as raw 32-bit pixel units, one RGBA pixel per
unit in row-major order; no block-level decompression is performed.

The package focuses on practical workflows: probe container dimensions
with DecodeConfig, or decode a whole in-memory container into an image
with LoadFromMemory. Reading containers from disk and re-encoding the
decoded image are left to the caller.
*/
package astc
