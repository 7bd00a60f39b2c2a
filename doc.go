/*
Package apicula unpacks a Gowin FPGA configuration bitstream into a structural
netlist.

The configuration bitmap is cut into tiles following the grid of the fuse
database. The fuse tables of every non-empty tile are matched against its bits
and the matched rows are decoded into routing connections, LUTs, flip-flops and
I/O buffers. These are then registered into a netlist.Module with chip-wide wire
names:

	db, _ := fuse.Load(dbFile)
	bm, _ := bitmap.Read(bitsFile)
	m, err := apicula.Unpack(db, bm)
	if err != nil {
		// malformed geometry or inconsistent tables
	}
	m.WriteVerilog(os.Stdout)

Decoding is a pure function of its inputs: unpacking the same database and
bitmap twice yields identical netlists.

*/
package apicula
