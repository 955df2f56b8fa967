// Package matrixcfg loads and validates the LED matrix settings file.
//
// The settings file is a flat list of KEY=VALUE assignments describing the
// physical panel wiring (dimensions, chaining, multiplexing) and driver
// tuning (PWM depth, brightness, GPIO timing). It is read once at startup
// and handed opaquely to the external rgbmatrix driver; nothing in it
// mutates after load.
//
// # Settings Categories
//
// The configuration covers three areas:
//   - Geometry: panel rows/columns, chain length, parallel chains,
//     pixel mapper arrangement
//   - Wiring: hardware GPIO mapping, panel init type, multiplexing scheme,
//     row address type, scan mode, RGB wire order
//   - Driver tuning: PWM bits, PWM LSB nanoseconds, dither bits,
//     brightness, GPIO slowdown, hardware pulsing, privilege dropping
//
// # Usage Example
//
//	file, err := matrixcfg.Load(".env")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if errs := file.Config.Validate(); len(errs) > 0 {
//	    for _, e := range errs {
//	        fmt.Println(e)
//	    }
//	    os.Exit(1)
//	}
//
//	// Flags understood by the rgbmatrix driver binaries:
//	fmt.Println(strings.Join(file.Config.DriverFlags(), " "))
//
// Every numeric setting has a documented range (multiplexing 0-18,
// parallel chains 1-3, brightness 1-100, and so on); Validate checks all
// of them and reports every violation, not just the first.
package matrixcfg
