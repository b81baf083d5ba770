// Package imageflag defines the command-line surface of the post-build image
// tool: the kernel positional argument, the required --image option and the
// --assembly/--no-assembly pair.
package imageflag

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

var (
	image    string
	assembly = true
)

// Invocation is the resolved configuration of a single run.
type Invocation struct {
	// Kernel is the path to the kernel binary. It is not checked for
	// existence here; a missing file is the external tool's error to raise.
	Kernel string

	// Image is the bare output file name, used verbatim.
	Image string

	// Assembly selects whether a disassembly listing is produced.
	Assembly bool
}

// assemblyValue folds --assembly and --no-assembly into one setting so that
// the flag given last wins. pflag does not synthesize negated forms.
type assemblyValue struct {
	negate bool
}

func (v *assemblyValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	assembly = b != v.negate
	return nil
}

func (v *assemblyValue) Type() string { return "bool" }

func (v *assemblyValue) String() string {
	return strconv.FormatBool(assembly != v.negate)
}

func RegisterPflags(fs *pflag.FlagSet) {
	fs.StringVar(&image,
		"image",
		image,
		`name of the kernel image file to create (required)`)

	fs.Var(&assemblyValue{}, "assembly",
		`output a disassembly of the kernel image`)
	fs.Lookup("assembly").NoOptDefVal = "true"

	fs.Var(&assemblyValue{negate: true}, "no-assembly",
		`suppress the disassembly listing`)
	fs.Lookup("no-assembly").NoOptDefVal = "true"
}

// FromFlagSet resolves the parsed flag set into an Invocation. It fails when
// the --image option is missing or when there is not exactly one kernel
// positional argument.
func FromFlagSet(fs *pflag.FlagSet) (Invocation, error) {
	if image == "" {
		return Invocation{}, fmt.Errorf("the --image option is required")
	}
	args := fs.Args()
	if n := len(args); n != 1 {
		return Invocation{}, fmt.Errorf("expected exactly one kernel argument, got %d", n)
	}
	return Invocation{
		Kernel:   args[0],
		Image:    image,
		Assembly: assembly,
	}, nil
}

func SetImage(i string) { image = i }

func SetAssembly(a bool) { assembly = a }
