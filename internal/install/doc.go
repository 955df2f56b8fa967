// Package install sequences the environment setup for the LED matrix
// display: system packages, the rgbmatrix native library build, its Python
// binding install, and the pip dependency bootstrap.
//
// The sequence is deliberately linear with no retry or recovery layer:
// each step runs to completion or the run stops at the first failure with
// the failing command's own exit status and stderr preserved. Steps carry
// an optional AlreadyDone probe so a re-run skips work that is already in
// place instead of mutating the environment again.
//
// # Usage Example
//
//	opts := install.PlanOptions{
//	    MatrixSrcDir:     "/home/pi/rpi-rgb-led-matrix",
//	    RequirementsFile: "requirements.txt",
//	}
//
//	runner := install.NewRunner(install.DefaultConfig())
//	results, err := runner.Run(ctx, install.Plan(opts), install.Hooks{})
//	if err != nil {
//	    var stepErr *install.StepError
//	    if errors.As(err, &stepErr) {
//	        fmt.Printf("step %s failed with exit code %d\n", stepErr.Step, stepErr.ExitCode)
//	    }
//	}
//
// Use ValidatePrerequisites before running to report missing tools
// (apt-get, make, gcc, python3, pip) and privilege problems up front.
package install
