package objtool_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/propeller-os/postbuild/objtool"
)

func TestDumpCommand(t *testing.T) {
	cmd := objtool.DumpCommand(context.Background(), "rust-objdump", "build/kernel")
	want := []string{"rust-objdump", "-h", "-D", "build/kernel"}
	if diff := cmp.Diff(want, cmd.Args); diff != "" {
		t.Errorf("unexpected argv: diff (-want +got):\n%s", diff)
	}
}

func TestCopyCommand(t *testing.T) {
	cmd := objtool.CopyCommand(context.Background(), "rust-objcopy", "build/kernel", "build/kernel.img")
	want := []string{"rust-objcopy", "-O", "binary", "build/kernel", "build/kernel.img"}
	if diff := cmp.Diff(want, cmd.Args); diff != "" {
		t.Errorf("unexpected argv: diff (-want +got):\n%s", diff)
	}
}

func TestToolResolution(t *testing.T) {
	for _, tt := range []struct {
		desc string
		env  map[string]string
		tool func() string
		want string
	}{
		{
			desc: "objdump default",
			tool: objtool.Objdump,
			want: "rust-objdump",
		},

		{
			desc: "objcopy default",
			tool: objtool.Objcopy,
			want: "rust-objcopy",
		},

		{
			desc: "objdump override",
			env:  map[string]string{"OBJDUMP": "llvm-objdump"},
			tool: objtool.Objdump,
			want: "llvm-objdump",
		},

		{
			desc: "objcopy override",
			env:  map[string]string{"OBJCOPY": "llvm-objcopy"},
			tool: objtool.Objcopy,
			want: "llvm-objcopy",
		},
	} {
		t.Run(tt.desc, func(t *testing.T) {
			t.Setenv("OBJDUMP", "")
			t.Setenv("OBJCOPY", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if got := tt.tool(); got != tt.want {
				t.Errorf("resolved tool = %q, want %q", got, tt.want)
			}
		})
	}
}
