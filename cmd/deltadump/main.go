// Command deltadump round-trips a list of 32-bit integers through
// intdelta's codec and prints the element count, the worst-case encoded
// buffer size, the compressed size, the round-trip result, and each value
// read back from the decompressed intermediate buffer. It does not print the
// common value, the per-element modes, the payload bytes or a compression
// ratio. It exists for
// ad-hoc inspection of the wire format, the kind of small developer tool
// the surrounding toolchain favors alongside a headless codec library.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/scenepack/intdelta"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [file]\n\nReads whitespace- or comma-separated int32 values from stdin or file,\nround-trips them through the intdelta codec, and reports the layout.\n", os.Args[0])
	}
	flag.Parse()

	values, err := readValues(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "deltadump:", err)
		os.Exit(1)
	}

	if err := dump(os.Stdout, values); err != nil {
		fmt.Fprintln(os.Stderr, "deltadump:", err)
		os.Exit(1)
	}
}

func readValues(args []string) ([]int32, error) {
	var r *bufio.Scanner
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = bufio.NewScanner(f)
	} else {
		r = bufio.NewScanner(os.Stdin)
	}
	r.Split(bufio.ScanWords)

	var values []int32
	for r.Scan() {
		for _, tok := range strings.Split(r.Text(), ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			n, err := strconv.ParseInt(tok, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("parsing %q: %w", tok, err)
			}
			values = append(values, int32(n))
		}
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

func dump(w *os.File, values []int32) error {
	n := len(values)
	out := make([]byte, intdelta.GetCompressedBufferSize(n))
	compressedLen, err := intdelta.CompressInt32ToBuffer(values, out)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "elements: %d\n", n)
	fmt.Fprintf(w, "encoded buffer capacity (worst case): %d\n", intdelta.EncodedBufferSize(n))
	fmt.Fprintf(w, "compressed bytes:                     %d\n", compressedLen)
	if n == 0 {
		return nil
	}

	roundTripped := make([]int32, n)
	working := make([]byte, intdelta.GetDecompressionWorkingSpaceSize(n))
	if _, err := intdelta.DecompressInt32FromBuffer(out[:compressedLen], n, roundTripped, working); err != nil {
		return err
	}
	for i, v := range roundTripped {
		if v != values[i] {
			return fmt.Errorf("round-trip mismatch at index %d: got %d, want %d", i, v, values[i])
		}
	}
	fmt.Fprintln(w, "round-trip: ok")

	var rdr intdelta.Reader
	if err := rdr.Load(working, n); err != nil {
		return err
	}
	for {
		v, i, ok := rdr.Next()
		if !ok {
			break
		}
		fmt.Fprintf(w, "  [%d] = %d\n", i, v)
	}
	return nil
}
