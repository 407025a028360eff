package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/wirepack"
	"github.com/wippyai/wirepack/codec"
)

func runEncode(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	var (
		file    = fs.StringP("file", "f", "", "YAML input file (default stdin)")
		format  = fs.String("format", cfg.Format.String(), "output format: binary, cbor or msgpack")
		raw     = fs.Bool("raw", false, "write raw bytes even when stdout is a terminal")
		verbose = fs.BoolP("verbose", "v", false, "enable debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	log := setupLogging(*verbose)
	defer func() { _ = log.Sync() }()

	f, err := wirepack.ParseFormat(*format)
	if err != nil {
		return err
	}

	in := stdin
	if *file != "" {
		fh, err := os.Open(*file)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer fh.Close()
		in = fh
	}

	docs, err := readDocuments(in)
	if err != nil {
		return err
	}

	opts := wirepack.Opts{Format: f}
	var out []byte
	for i, doc := range docs {
		b, err := codec.Marshal(opts, doc)
		if err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
		log.Debug("encoded document",
			zap.Int("index", i),
			zap.Stringer("format", f),
			zap.Int("bytes", len(b)))
		out = append(out, b...)
	}

	if !*raw && isTerminal(stdout) {
		_, err = io.WriteString(stdout, hex.Dump(out))
		return err
	}
	_, err = stdout.Write(out)
	return err
}

// readDocuments decodes every YAML document in r.
func readDocuments(r io.Reader) ([]any, error) {
	dec := yaml.NewDecoder(r)
	var docs []any
	for {
		var doc any
		err := dec.Decode(&doc)
		if err == io.EOF {
			return docs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		docs = append(docs, normalize(doc))
	}
}

// normalize rewrites a decoded YAML tree into values every format can
// encode: nulls become absent options and non-string map keys are kept as
// dynamic keys.
func normalize(v any) any {
	switch t := v.(type) {
	case nil:
		return (*any)(nil)
	case map[string]any:
		for k, e := range t {
			t[k] = normalize(e)
		}
		return t
	case map[any]any:
		for k, e := range t {
			t[k] = normalize(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = normalize(e)
		}
		return t
	default:
		return v
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
