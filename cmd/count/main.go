package main

// Build-time variables 'version', 'commit' and 'date' are declared in
// root.go and populated via -ldflags.

// main is the entry point for the count application. It invokes Execute
// (defined in root.go), which sets up and runs the root Cobra command.
// Error handling (printing the diagnostic and setting a non-zero exit
// code) happens there, based on the error returned by RunE.
func main() {
	Execute()
}
