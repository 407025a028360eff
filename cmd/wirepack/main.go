// Command wirepack encodes YAML documents in the wirepack formats and
// fingerprints type descriptors.
//
// Usage:
//
//	wirepack encode [-f file] [--format binary|cbor|msgpack] [--raw] [-v]
//	wirepack fingerprint -f descriptor.yaml [--check hex] [-v]
//
// The default format comes from WIREPACK_FORMAT when set.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "encode":
		err = runEncode(os.Args[2:], os.Stdin, os.Stdout)
	case "fingerprint":
		err = runFingerprint(os.Args[2:], os.Stdout)
	case "help", "-h", "--help":
		usage(os.Stdout)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		usage(os.Stderr)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: wirepack encode [-f file] [--format binary|cbor|msgpack] [--raw] [-v]")
	fmt.Fprintln(w, "       wirepack fingerprint -f descriptor.yaml [--check hex] [-v]")
}
