package dict

import "testing"

func TestHeaderRoundTrip(t *testing.T) {
	cfg := &Config{LC: 3, LP: 0, PB: 2, DictSize: 1 << 24}
	header, err := EncodeHeader(cfg)
	if err != nil {
		t.Fatalf("EncodeHeader: %v", err)
	}

	lc, lp, pb, dictSize := DecodeHeader(header)
	if lc != cfg.LC || lp != cfg.LP || pb != cfg.PB {
		t.Errorf("DecodeHeader = (lc=%d,lp=%d,pb=%d), want (%d,%d,%d)", lc, lp, pb, cfg.LC, cfg.LP, cfg.PB)
	}
	if dictSize != cfg.DictSize {
		t.Errorf("dictSize = %d, want %d", dictSize, cfg.DictSize)
	}
}

func TestDecodeHeaderClampsUndersizedDict(t *testing.T) {
	var header [HeaderSize]byte
	// dictSize bytes left at zero should clamp up to minDictSize.
	_, _, _, dictSize := DecodeHeader(header)
	if dictSize != minDictSize {
		t.Errorf("dictSize = %d, want minDictSize %d", dictSize, minDictSize)
	}
}
