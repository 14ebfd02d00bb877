// Package dict implements the dictionary search subsystem of an LZMA-style
// encoder: a sliding input window, position normalization, CRC-based hash
// functions, fixed-prefix hash tables, three interchangeable main-dictionary
// layouts (binary tree, hash-chain reference, cache-efficient hash-chain),
// and the match enumerator that walks them to produce length/distance pairs.
//
// The entropy coder, optimal parser, and stream framing that consume this
// package's output are external collaborators; this package only finds
// matches and keeps the dictionary current as the cursor advances.
package dict
