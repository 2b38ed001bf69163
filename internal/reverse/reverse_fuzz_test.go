package reverse_test

import (
	"bytes"
	"testing"

	"github.com/BoostyLabs/reddid/internal/reverse"
)

func FuzzReverse(f *testing.F) {
	f.Add([]byte("some_data_here"))
	f.Add([]byte{0x0c, 0x07, 0xff, 0xe5})

	f.Fuzz(func(t *testing.T, orig []byte) {
		saved := bytes.Clone(orig)

		rev := reverse.Bytes(orig)
		for i := range rev {
			if rev[i] != saved[len(saved)-1-i] {
				t.Fatalf("Byte %d: %x, input: %x", i, rev, saved)
			}
		}

		doubleRev := reverse.Bytes(rev)
		if !bytes.Equal(saved, doubleRev) {
			t.Errorf("Before: %x, after: %x", saved, doubleRev)
		}
	})
}
