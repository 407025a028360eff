package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/wirepack/fingerprint"
)

func runFingerprint(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("fingerprint", flag.ContinueOnError)
	var (
		file    = fs.StringP("file", "f", "", "YAML type descriptor")
		check   = fs.String("check", "", "remote fingerprint to compare against")
		verbose = fs.BoolP("verbose", "v", false, "enable debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("fingerprint: -f descriptor.yaml is required")
	}

	log := setupLogging(*verbose)
	defer func() { _ = log.Sync() }()

	data, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("read descriptor: %w", err)
	}
	d, err := parseDescriptor(data)
	if err != nil {
		return err
	}

	fp := fingerprint.Compute(d)
	log.Debug("computed fingerprint",
		zap.String("name", d.Name),
		zap.Stringer("fingerprint", fp))

	fmt.Fprintf(stdout, "name:        %s\n", d.Name)
	fmt.Fprintf(stdout, "version:     %s\n", d.VersionString())
	fmt.Fprintf(stdout, "fingerprint: %s\n", fp)
	fmt.Fprintf(stdout, "short:       %016x\n", fp.Short())

	if *check != "" {
		remote, err := fingerprint.Parse(*check)
		if err != nil {
			return err
		}
		if err := fingerprint.Check(fp, remote); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "compatible")
	}
	return nil
}

// parseDescriptor reads a descriptor; an omitted compiler tag means the
// running toolchain's.
func parseDescriptor(data []byte) (fingerprint.Descriptor, error) {
	var d fingerprint.Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("parse descriptor: %w", err)
	}
	if d.Name == "" {
		return d, fmt.Errorf("parse descriptor: name is required")
	}
	if d.Compiler == "" {
		d.Compiler = runtime.Compiler
	}
	return d, nil
}
