// Package objtool builds the invocations of the external binary-manipulation
// tools used after a kernel build: the disassembler and the object-copy tool.
//
// The defaults are the llvm-tools names installed by cargo-binutils. Set the
// OBJDUMP or OBJCOPY environment variable to substitute another toolchain.
package objtool

import (
	"context"
	"os"
	"os/exec"
)

const (
	defaultObjdump = "rust-objdump"
	defaultObjcopy = "rust-objcopy"
)

func fromEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Objdump returns the disassembler executable to invoke.
func Objdump() string { return fromEnv("OBJDUMP", defaultObjdump) }

// Objcopy returns the object-copy executable to invoke.
func Objcopy() string { return fromEnv("OBJCOPY", defaultObjcopy) }

// DumpCommand requests a section-header dump plus a full disassembly of
// kernel. Stdout is left for the caller to redirect.
func DumpCommand(ctx context.Context, tool, kernel string) *exec.Cmd {
	return exec.CommandContext(ctx, tool, "-h", "-D", kernel)
}

// CopyCommand converts kernel into a raw flat binary at image.
func CopyCommand(ctx context.Context, tool, kernel, image string) *exec.Cmd {
	return exec.CommandContext(ctx, tool, "-O", "binary", kernel, image)
}
