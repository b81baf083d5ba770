// propeller-mkimage is the post-build step of the kernel build: it converts
// the compiled kernel binary into a raw image file loadable by a bootloader
// or emulator, and by default dumps a disassembly listing next to it.
//
// The rust-objdump and rust-objcopy tools must be installed (llvm-tools and
// cargo-binutils), or substitutes named via the OBJDUMP/OBJCOPY environment
// variables.
package main

import (
	"context"
	"log"

	"github.com/spf13/pflag"

	"github.com/propeller-os/postbuild"
	"github.com/propeller-os/postbuild/imageflag"
)

func main() {
	imageflag.RegisterPflags(pflag.CommandLine)
	pflag.Parse()

	inv, err := imageflag.FromFlagSet(pflag.CommandLine)
	if err != nil {
		pflag.Usage()
		log.Fatal(err)
	}

	var r postbuild.Runner
	if err := r.Run(context.Background(), inv); err != nil {
		log.Fatal(err)
	}
}
