package adapter

import (
	"errors"
	"os/exec"
	"slices"
	"testing"
)

func TestOpenerConfiguredCommand(t *testing.T) {
	o := NewOpener("sh", []string{"-c", "true"}, NullLogger())

	var got *exec.Cmd
	o.run = func(cmd *exec.Cmd) error {
		got = cmd
		return nil
	}

	if err := o.Open(" https://example.com/hope.jpg "); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	want := []string{"sh", "-c", "true", "https://example.com/hope.jpg"}
	if !slices.Equal(got.Args, want) {
		t.Errorf("Args = %q, want %q", got.Args, want)
	}
}

func TestOpenerEmptyURL(t *testing.T) {
	o := NewOpener("", nil, NullLogger())
	o.run = func(cmd *exec.Cmd) error {
		t.Fatal("nothing should run for an empty url")
		return nil
	}

	if err := o.Open("  "); !errors.Is(err, ErrNoURL) {
		t.Errorf("Open() error = %v, want ErrNoURL", err)
	}
}

func TestOpenerRunError(t *testing.T) {
	o := NewOpener("viewer", nil, NullLogger())
	boom := errors.New("not found")
	o.run = func(cmd *exec.Cmd) error { return boom }

	if err := o.Open("https://example.com/a.jpg"); !errors.Is(err, boom) {
		t.Errorf("Open() error = %v, want wrapped %v", err, boom)
	}
}

func TestDefaultCommand(t *testing.T) {
	tests := []struct {
		goos string
		want []string
	}{
		{"darwin", []string{"open", "u"}},
		{"windows", []string{"cmd", "/c", "start", "", "u"}},
		{"linux", []string{"xdg-open", "u"}},
		{"freebsd", []string{"xdg-open", "u"}},
	}
	for _, tt := range tests {
		if got := defaultCommand(tt.goos, "u").Args; !slices.Equal(got, tt.want) {
			t.Errorf("defaultCommand(%q) = %q, want %q", tt.goos, got, tt.want)
		}
	}
}
