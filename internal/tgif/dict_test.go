package tgif

import "testing"

func TestHashTableInsertLookup(t *testing.T) {
	h := newHashTable()
	keys := []uint32{0x0000, 0x00FF, 0x1234, 0xABCDE, 0x000001}
	for i, k := range keys {
		if got := h.lookup(k); got != -1 {
			t.Fatalf("key %x: expected absent before insert, got %d", k, got)
		}
		h.insert(k, i+1)
	}
	for i, k := range keys {
		got := h.lookup(k)
		if got != i+1 {
			t.Errorf("key %x: got code %d, want %d", k, got, i+1)
		}
	}
}

func TestHashTableCollisionProbing(t *testing.T) {
	h := newHashTable()
	// Construct two keys that hash to the same slot and confirm linear
	// probing keeps both retrievable.
	base := hashKey(0x1000)
	var k2 uint32
	for k := uint32(0); k < htSize*2; k++ {
		if k != 0x1000 && hashKey(k) == base {
			k2 = k
			break
		}
	}
	h.insert(0x1000, 11)
	h.insert(k2, 22)
	if got := h.lookup(0x1000); got != 11 {
		t.Errorf("key1: got %d, want 11", got)
	}
	if got := h.lookup(k2); got != 22 {
		t.Errorf("key2: got %d, want 22", got)
	}
}

func TestHashTableClearEmptiesTable(t *testing.T) {
	h := newHashTable()
	h.insert(0x55, 7)
	h.clear()
	if got := h.lookup(0x55); got != -1 {
		t.Errorf("expected empty table after clear, got %d", got)
	}
}

func TestDecoderDictResetClearsPrefixes(t *testing.T) {
	d := newDecoderDict(64, 5)
	d.prefix[3] = 99
	d.stack[0] = 1
	d.stackPtr = 1
	d.reset()
	for i, p := range d.prefix {
		if p != noSuchCode {
			t.Fatalf("prefix[%d] = %d after reset, want noSuchCode", i, p)
		}
	}
	if d.stackPtr != 0 {
		t.Errorf("stackPtr = %d after reset, want 0", d.stackPtr)
	}
}
