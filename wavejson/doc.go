// Package wavejson decodes WaveJSON documents into wavedraw figures.
//
// A WaveJSON document is a JSON object with a "signal" array. Each entry is
// either a signal object or an array forming a named group of nested
// entries:
//
//	{
//	    "signal": [
//	        {"name": "clk", "wave": "P......"},
//	        ["bus",
//	            {"name": "data", "wave": "x.345x.", "data": ["head", "body", "tail"]},
//	            {"name": "req",  "wave": "0.1..0."}
//	        ]
//	    ]
//	}
//
// [Parse] accepts strict JSON, [ParseJSON5] additionally accepts the JSON5
// conveniences (unquoted keys, single quotes, trailing commas) common in
// hand-written documents. [Document.ToFigure] converts a decoded document
// into a [wavedraw.Figure] ready for assembly.
package wavejson
