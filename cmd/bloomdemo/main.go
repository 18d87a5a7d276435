// Command bloomdemo inserts a fixed list of keys into a Bloom filter one at a
// time, checking every key before each insert.
//
// Membership results are written to stdout, filter dumps to stderr.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	flags "github.com/jessevdk/go-flags"

	"github.com/forestrie/go-bloom/bloom"
)

func main() {
	cfg, _, err := loadConfig(os.Args[1:])
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	logger.New(cfg.LogLevel)
	log := logger.Sugar.WithServiceName("bloomdemo")

	err = run(cfg, os.Stdout, os.Stderr, log)
	if err != nil {
		log.Errorf("bloomdemo: %v", err)
	}
	logger.OnExit()
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg *config, stdout, stderr io.Writer, log logger.Logger) error {
	f, err := bloom.New(cfg.Capacity, cfg.Ratio)
	if err != nil {
		return err
	}
	defer f.Release()

	log.Infof("false positive rate is %f (m=%d, k=%d, design capacity %d)",
		f.FalsePositiveEstimate(), f.BitCapacity(), f.HashRounds(), f.DesignCapacity())

	keys := make([][]byte, len(cfg.keys))
	for i, key := range cfg.keys {
		keys[i] = []byte(key)
	}

	for _, p := range keys {
		if err := checkAll(f, keys, stdout); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "SETTING [%s] in the filter\n", p)
		if err := f.Insert(p); err != nil {
			return err
		}
		if !cfg.NoDump {
			if err := f.Dump(stderr, ""); err != nil {
				return err
			}
		}
	}
	if err := checkAll(f, keys, stdout); err != nil {
		return err
	}

	r, err := f.Report()
	if err != nil {
		return err
	}
	log.Infof("inserted %d keys, %d of %d bits set (fill %.6f)",
		r.Inserted, r.SetBits, r.BitCapacity, r.FillRatio)
	return nil
}

func checkAll(f *bloom.Filter, keys [][]byte, w io.Writer) error {
	for _, q := range keys {
		ok, err := f.MaybeContains(q)
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintf(w, "checking... [%s] might be in the set\n", q)
		} else {
			fmt.Fprintf(w, "checking... [%s] definitely not in the set\n", q)
		}
	}
	return nil
}
