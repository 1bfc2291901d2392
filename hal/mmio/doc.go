// Package mmio maps a keyboard controller's register block from a device
// file and exposes it as a hal.Registers.
//
// On Linux the controller registers of an FPGA soft core or a SoC peripheral
// can be reached by mapping /dev/mem (or a UIO device) at the physical base
// address. The package maps the page containing the status and data
// registers read-only and reads each register with a single aligned 32-bit
// load.
//
//	regs, err := mmio.Open("/dev/mem", hal.DefaultBase, hal.StatusOffset, hal.DataOffset)
//	if err != nil {
//	    return err
//	}
//	defer regs.Close()
//
// Other platforms build a stub whose Open returns pkg.ErrUnsupportedSource.
package mmio
