package bloom

import (
	"bufio"
	"fmt"
	"io"
)

// Dump writes a human readable report of f to w, each line starting with
// prefix:
//
//	[bloom 0xc000010000]
//	 m = 128, k = 5, e = 0.001392
//	  [ 0 1 0 ... ]
//
// The raw bits are only written when BitCapacity <= DumpMaxBits, DumpWrap bits
// per row.
func (f *Filter) Dump(w io.Writer, prefix string) error {
	if err := f.check(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s[bloom %p]\n", prefix, f)
	fmt.Fprintf(bw, "%s m = %d, k = %d, e = %f\n", prefix, f.mBits, f.k, f.FalsePositiveEstimate())

	if f.mBits <= DumpMaxBits {
		for i := uint32(0); i < f.mBits; i++ {
			if i%DumpWrap == 0 {
				if i != 0 {
					bw.WriteString("]\n")
				}
				bw.WriteString(prefix)
				bw.WriteString("  [ ")
			}
			if f.bits.Test(uint(i)) {
				bw.WriteString("1 ")
			} else {
				bw.WriteString("0 ")
			}
		}
		bw.WriteString("]\n")
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("bloom: dump: %w", err)
	}
	return nil
}
