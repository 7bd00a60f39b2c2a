// Command unpack decodes a Gowin configuration bitmap into a Verilog netlist.
//
// Usage:
//
//	unpack -db device.json [-o unpack.v] [-workers n] [-v] bitmap.txt
package main

import (
	"flag"
	"log"
	"os"

	"github.com/chiplet/apicula"
	"github.com/chiplet/apicula/bitmap"
	"github.com/chiplet/apicula/fuse"
	"github.com/chiplet/apicula/netlist"
	"github.com/pkg/errors"
)

type stdLogger struct {
	verbose bool
}

func (l stdLogger) Debug(msg string, kv ...interface{}) {
	if l.verbose {
		log.Println(append([]interface{}{msg}, kv...)...)
	}
}

func (l stdLogger) Info(msg string, kv ...interface{}) {
	log.Println(append([]interface{}{msg}, kv...)...)
}

func (l stdLogger) Error(msg string, kv ...interface{}) {
	log.Println(append([]interface{}{"error:", msg}, kv...)...)
}

func load(dbPath, bitsPath string) (*fuse.Database, *bitmap.Bitmap, error) {
	f, err := os.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	db, err := fuse.Load(f)
	if err != nil {
		return nil, nil, errors.Wrap(err, dbPath)
	}

	b, err := os.Open(bitsPath)
	if err != nil {
		return nil, nil, err
	}
	defer b.Close()
	bm, err := bitmap.Read(b)
	if err != nil {
		return nil, nil, errors.Wrap(err, bitsPath)
	}
	return db, bm, nil
}

func main() {
	dbPath := flag.String("db", "", "fuse database (JSON)")
	output := flag.String("o", "unpack.v", "output Verilog file, - for stdout")
	workers := flag.Int("workers", 1, "decoding goroutines, 0 for GOMAXPROCS")
	verbose := flag.Bool("v", false, "log every decoded tile")
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("unpack: ")

	if *dbPath == "" || flag.NArg() != 1 {
		log.Fatal("usage: unpack -db device.json [-o unpack.v] [-workers n] [-v] bitmap.txt")
	}

	db, bm, err := load(*dbPath, flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	m, err := apicula.Unpack(db, bm,
		apicula.WithWorkers(*workers),
		apicula.WithLogger(stdLogger{verbose: *verbose}))
	if err != nil {
		log.Fatal(err)
	}

	if err = writeNetlist(m, *output); err != nil {
		log.Fatal(err)
	}
}

// writeNetlist writes m as Verilog to path, or to stdout if path is "-".
func writeNetlist(m *netlist.Module, path string) error {
	if path == "-" {
		return m.WriteVerilog(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = m.WriteVerilog(f); err != nil {
		f.Close()
		return errors.Wrap(err, path)
	}
	return f.Close()
}
