package dict

// fixedHashTables holds the 2-byte and 3-byte short-match tables: one
// most-recent-position slot per hash value, consulted by the match
// enumerator ahead of (and independent from) whichever main dictionary
// layout is in use. Grounded on the hash/fixedHashSize/hashSizeSum layout
// documented in the reference match finder's header and populated by
// MatchFinder_Init_LowHash.
//
// The 3-byte table is omitted for the cache-efficient layout: HC-CE folds
// its 3-byte coverage into the 4-byte cache-efficient hash instead of
// keeping a separate fixed table (SPEC_FULL.md §11).
type fixedHashTables struct {
	h2 []Pos
	h3 []Pos
}

func newFixedHashTables(numHashBytes uint32, cacheEfficient bool) *fixedHashTables {
	t := &fixedHashTables{}
	if numHashBytes > 2 {
		t.h2 = make([]Pos, kHash2Size)
	}
	if numHashBytes > 4 && !cacheEfficient {
		t.h3 = make([]Pos, kHash3Size)
	}
	return t
}

// insert2 records pos as the most recent occurrence of h2's 2-byte prefix
// and returns whatever position previously held that slot (emptyPos if
// none).
func (t *fixedHashTables) insert2(h2 uint32, pos Pos) Pos {
	old := t.h2[h2]
	t.h2[h2] = pos
	return old
}

// insert3 is insert2's 3-byte-prefix counterpart; callers must not invoke
// it when the table was built without 3-byte coverage.
func (t *fixedHashTables) insert3(h3 uint32, pos Pos) Pos {
	old := t.h3[h3]
	t.h3[h3] = pos
	return old
}

func (t *fixedHashTables) normalize(subValue Pos) {
	if t.h2 != nil {
		Normalize3(subValue, t.h2)
	}
	if t.h3 != nil {
		Normalize3(subValue, t.h3)
	}
}
