package nospace

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseBlock(t *testing.T) {
	tests := []struct {
		block string
		want  Command
	}{
		{"cd /", ChangeToRoot{}},
		{"cd ..", ChangeUp{}},
		{"cd a", ChangeInto{Name: "a"}},
		{"ls", List{}},
		{"ls\ndir a\n14848514 b.txt", List{
			Dirs:  []string{"a"},
			Files: []File{{Name: "b.txt", Size: 14848514}},
		}},
		{"ls\ndir a\nbogus\n-3 neg\nxyz file\n1 2 3\n7 ok", List{
			Dirs:  []string{"a"},
			Files: []File{{Name: "ok", Size: 7}},
		}},
	}

	for _, tt := range tests {
		got, err := ParseBlock(tt.block)
		if err != nil {
			t.Errorf("ParseBlock(%q) error = %v", tt.block, err)

			continue
		}

		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseBlock(%q) = %#v, want %#v", tt.block, got, tt.want)
		}
	}
}

func TestParseBlockUnknown(t *testing.T) {
	for _, block := range []string{"rm -rf /", "cd", "cd a b", "ls -la", "pwd"} {
		_, err := ParseBlock(block)
		if !errors.Is(err, ErrUnknownCommand) {
			t.Errorf("ParseBlock(%q) error = %v, want ErrUnknownCommand", block, err)
		}

		var unknown *UnknownCommandError
		if !errors.As(err, &unknown) || unknown.Invocation != block {
			t.Errorf("ParseBlock(%q) error = %#v, want invocation %q", block, err, block)
		}
	}
}

func TestParseSkipsBadBlocks(t *testing.T) {
	transcript := "$ cd /\n$ frobnicate\nnoise\n$ ls\n10 a\n$\n$ cd x\n"

	cmds, skipped := Parse(transcript)

	want := []Command{
		ChangeToRoot{},
		List{Files: []File{{Name: "a", Size: 10}}},
		ChangeInto{Name: "x"},
	}
	if !reflect.DeepEqual(cmds, want) {
		t.Errorf("Parse() commands = %#v, want %#v", cmds, want)
	}

	if len(skipped) != 1 || !errors.Is(skipped[0], ErrUnknownCommand) {
		t.Errorf("Parse() skipped = %v, want one unknown command", skipped)
	}
}

func TestParseEmpty(t *testing.T) {
	cmds, skipped := Parse("")
	if len(cmds) != 0 || len(skipped) != 0 {
		t.Errorf("Parse(\"\") = %v, %v, want nothing", cmds, skipped)
	}
}
