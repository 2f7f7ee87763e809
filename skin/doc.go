// Package skin loads partial option documents and overlays them onto the
// rendering defaults.
//
// A skin sets only the options it names; everything else keeps the value
// already in place. Documents are YAML, which makes plain JSON skins work
// too:
//
//	font_size: 12
//	wave_height: 32
//	backgrounds:
//	  - "#FFFFFF"
//	  - "#FFF7B2"
//	  - "#FFE0A1"
//	  - "#B5E8FF"
//	  - "#BFE3C5"
//	  - "#C4CBF0"
//	  - "#F0BFF7"
//	  - "#FFD6D6"
//
// Color entries are validated and normalized to lowercase #rrggbb form at
// load time, so a typo fails with the offending entry named instead of
// surfacing as a silently broken stylesheet.
package skin
