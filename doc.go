// Package jsonsplit splits a streamed JSON array into its elements.
//
// The input is consumed in chunks of arbitrary size and only the element
// currently being read is buffered, so arrays of any length can be
// processed with memory proportional to their largest element.
//
//	s := jsonsplit.NewReader(r)
//	for span, err := range s.All() {
//		if err != nil {
//			// handle *SyntaxError, *PrematureEndError...
//		}
//		// span holds the raw JSON of one element
//	}
//
// Elements can be decoded into Go values with a Decoder or parsed into
// fastjson values with Values.
package jsonsplit
