// Package postbuild turns a compiled kernel binary into a raw image file,
// optionally emitting a disassembly listing next to it.
package postbuild

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/propeller-os/postbuild/humanize"
	"github.com/propeller-os/postbuild/imageflag"
	"github.com/propeller-os/postbuild/objtool"
)

// ListingFile is the name of the disassembly listing, created in the same
// directory as the kernel file.
const ListingFile = "asm.txt"

// Runner executes the post-build steps. The zero value uses the operating
// system filesystem and the tool names resolved by package objtool.
type Runner struct {
	// Fs is used to create the disassembly listing. Defaults to the OS
	// filesystem.
	Fs afero.Fs

	// Objdump and Objcopy name the external tools to invoke. Empty fields
	// fall back to objtool's resolution.
	Objdump string
	Objcopy string
}

func (r *Runner) fs() afero.Fs {
	if r.Fs != nil {
		return r.Fs
	}
	return afero.NewOsFs()
}

func (r *Runner) objdump() string {
	if r.Objdump != "" {
		return r.Objdump
	}
	return objtool.Objdump()
}

func (r *Runner) objcopy() string {
	if r.Objcopy != "" {
		return r.Objcopy
	}
	return objtool.Objcopy()
}

// Run derives the output paths from inv, writes the disassembly listing if
// requested and converts the kernel into a raw image. A failing disassembler
// only logs a warning; a failing conversion is returned as an error. The
// image name is joined to the kernel's directory verbatim.
func (r *Runner) Run(ctx context.Context, inv imageflag.Invocation) error {
	dir := filepath.Dir(inv.Kernel)
	img := filepath.Join(dir, inv.Image)

	if inv.Assembly {
		// The listing is advisory: a missing or failing disassembler must
		// not prevent the image from being built.
		if err := r.writeListing(ctx, inv.Kernel, filepath.Join(dir, ListingFile)); err != nil {
			log.Printf("disassembly listing: %v (continuing)", err)
		}
	}

	cmd := objtool.CopyCommand(ctx, r.objcopy(), inv.Kernel, img)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to make kernel image: %v: %w", cmd.Args, err)
	}

	if fi, err := r.fs().Stat(img); err == nil {
		log.Printf("created %s (%s)", img, humanize.Bytes(uint64(fi.Size())))
	}
	return nil
}

// writeListing runs the disassembler with its stdout redirected into path.
// The file is closed before returning so that it is fully flushed before the
// conversion step starts.
func (r *Runner) writeListing(ctx context.Context, kernel, path string) error {
	f, err := r.fs().Create(path)
	if err != nil {
		return err
	}
	cmd := objtool.DumpCommand(ctx, r.objdump(), kernel)
	cmd.Stdout = f
	cmd.Stderr = os.Stderr
	runErr := cmd.Run()
	if err := f.Close(); err != nil {
		return err
	}
	return runErr
}
