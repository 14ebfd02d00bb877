package dict

// Token is one literal-or-match step of the minimal literal/match encoding
// this package ships purely to prove match enumerator output correct
// end-to-end: a real LZMA encoder replaces GreedyParse with a range-coded
// optimal parse, but the correctness property Reconstruct checks, that
// copying Len bytes from Dist+1 positions behind the cursor reproduces the
// source, doesn't depend on which parser chose the token.
type Token struct {
	Literal byte
	Len     uint32 // 0 means Literal, otherwise a match of this length
	Dist    uint32 // meaningful only when Len > 0; wire convention: distance-1
}

// GreedyParse drives mf to the end of its attached input, taking the
// longest candidate GetMatches returns at each position and falling back to
// a literal otherwise, then skipping the remaining bytes a chosen match
// already covers. It is not an optimal parser (out of scope); it exists to
// turn match enumerator output into a token stream Reconstruct can
// round-trip against the original bytes.
func GreedyParse(mf *MatchFinder) ([]Token, error) {
	var tokens []Token
	var pairs []Pair

	for mf.AvailableBytes() > 0 {
		literal := mf.CurrentCursor()[0]

		var err error
		pairs, err = mf.GetMatches(pairs)
		if err != nil {
			return nil, err
		}

		if len(pairs) == 0 {
			tokens = append(tokens, Token{Literal: literal})
			continue
		}

		best := pairs[len(pairs)-1] // strictly increasing Len, longest last
		tokens = append(tokens, Token{Len: best.Len, Dist: best.Dist})
		if best.Len > 1 {
			if err := mf.Skip(best.Len - 1); err != nil {
				return nil, err
			}
		}
	}

	return tokens, nil
}

// Reconstruct replays tokens the way an LZ77-family decoder does: a literal
// token appends one byte, a match token copies Len bytes from Dist+1
// positions behind the output cursor, one byte at a time so an overlapping
// copy (Dist+1 < Len) reproduces the repeating run correctly.
func Reconstruct(tokens []Token) []byte {
	var out []byte
	for _, tok := range tokens {
		if tok.Len == 0 {
			out = append(out, tok.Literal)
			continue
		}
		start := len(out) - int(tok.Dist+1)
		for i := uint32(0); i < tok.Len; i++ {
			out = append(out, out[start+int(i)])
		}
	}
	return out
}
