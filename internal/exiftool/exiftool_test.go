package exiftool

import (
	"context"
	"errors"
	"image"
	"image/jpeg"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/barasher/go-exiftool"
)

var testDate = time.Date(2023, 4, 15, 15, 30, 0, 0, time.UTC)

func TestCommand_Args(t *testing.T) {
	cmd := NewCommand("", "/photos/IMG_2023-04-15-153000.jpg", testDate, true)
	want := []string{"-overwrite_original", "-AllDates=2023:04:15 15:30:00", "/photos/IMG_2023-04-15-153000.jpg"}
	if got := cmd.Args(); !reflect.DeepEqual(got, want) {
		t.Errorf("Args = %q, want %q", got, want)
	}

	keep := NewCommand("exiftool", "/photos/a.jpg", testDate, false)
	if got := keep.Args(); len(got) != 2 || got[0] != "-AllDates=2023:04:15 15:30:00" {
		t.Errorf("Args without overwrite = %q", got)
	}
}

func TestCommand_String(t *testing.T) {
	cases := []struct {
		name string
		cmd  Command
		want string
	}{
		{
			name: "overwrite",
			cmd:  NewCommand("", "/photos/IMG_2023-04-15-153000.jpg", testDate, true),
			want: `exiftool -overwrite_original '-AllDates=2023:04:15 15:30:00' /photos/IMG_2023-04-15-153000.jpg`,
		},
		{
			name: "keep original with custom binary",
			cmd:  NewCommand("/opt/bin/exiftool", "/photos/my trip.jpg", testDate, false),
			want: `/opt/bin/exiftool '-AllDates=2023:04:15 15:30:00' '/photos/my trip.jpg'`,
		},
		{
			name: "command substitution stays literal",
			cmd:  NewCommand("", "/photos/$(echo hi)_2023-04-15-153000.jpg", testDate, true),
			want: `exiftool -overwrite_original '-AllDates=2023:04:15 15:30:00' '/photos/$(echo hi)_2023-04-15-153000.jpg'`,
		},
		{
			name: "tab kept as is",
			cmd:  NewCommand("", "/photos/tab\there.jpg", testDate, true),
			want: "exiftool -overwrite_original '-AllDates=2023:04:15 15:30:00' '/photos/tab\there.jpg'",
		},
		{
			name: "single quote",
			cmd:  NewCommand("", "/photos/it's.jpg", testDate, true),
			want: `exiftool -overwrite_original '-AllDates=2023:04:15 15:30:00' '/photos/it'"'"'s.jpg'`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cmd.String(); got != tc.want {
				t.Errorf("String() = %s\nwant        %s", got, tc.want)
			}
		})
	}
}

// TestCommand_StringShellRoundTrip runs the printed line through sh with a
// stand-in binary that echoes its arguments, and checks the shell passed
// exactly Args() through.
func TestCommand_StringShellRoundTrip(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not on PATH")
	}
	dir := t.TempDir()
	bin := filepath.Join(dir, "echo-args")
	script := "#!/bin/sh\nfor a in \"$@\"; do printf '%s\\n' \"$a\"; done\n"
	if err := os.WriteFile(bin, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	paths := []string{
		"/photos/$(touch " + filepath.Join(dir, "ran") + ")_2023-04-15-153000.jpg",
		"/photos/`id`_$HOME_2023.jpg",
		"/photos/tab\there \"quoted\" it's.jpg",
		"/photos/ünïcode;&|.jpg",
	}
	for _, p := range paths {
		cmd := NewCommand(bin, p, testDate, true)
		out, err := exec.Command(sh, "-c", cmd.String()).Output()
		if err != nil {
			t.Fatalf("sh -c %s: %v", cmd.String(), err)
		}
		got := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
		if !reflect.DeepEqual(got, cmd.Args()) {
			t.Errorf("shell saw %q, want %q", got, cmd.Args())
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "ran")); err == nil {
		t.Error("command substitution in a file name was executed")
	}
}

func TestCheckPath(t *testing.T) {
	cases := []struct {
		path string
		ok   bool
	}{
		{"/photos/IMG_2023-04-15-153000.jpg", true},
		{"/photos/tab\there.jpg", true},
		{"/photos/x\n-All=\n2023-04-15-153000.jpg", false},
		{"/photos/x\r2023-04-15-153000.jpg", false},
	}
	for _, tc := range cases {
		err := CheckPath(tc.path)
		if tc.ok && err != nil {
			t.Errorf("CheckPath(%q) = %v", tc.path, err)
		}
		if !tc.ok && !errors.Is(err, ErrUnsafePath) {
			t.Errorf("CheckPath(%q) = %v, want ErrUnsafePath", tc.path, err)
		}
	}
}

func TestWriter_RejectsLineBreakBeforeStart(t *testing.T) {
	w := NewWriter(filepath.Join(t.TempDir(), "no-such-exiftool"))
	defer w.Close()
	cmd := NewCommand("", "/photos/a\n-All=\n.jpg", testDate, true)
	if err := w.WriteDates(context.Background(), cmd); !errors.Is(err, ErrUnsafePath) {
		t.Fatalf("err = %v, want ErrUnsafePath", err)
	}
	if w.started {
		t.Error("unsafe path must not start exiftool")
	}
}

func TestWriter_StartFailureIsSticky(t *testing.T) {
	w := NewWriter(filepath.Join(t.TempDir(), "no-such-exiftool"))
	defer w.Close()

	cmd := NewCommand("", "/photos/a.jpg", testDate, true)
	for i := 0; i < 2; i++ {
		err := w.WriteDates(context.Background(), cmd)
		if !errors.Is(err, ErrStart) {
			t.Fatalf("write %d: err = %v, want ErrStart", i, err)
		}
	}
}

func TestWriter_CancelledContext(t *testing.T) {
	w := NewWriter("")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := w.WriteDates(ctx, Command{}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if w.started {
		t.Error("cancelled write must not start exiftool")
	}
}

// --- Integration (requires exiftool on PATH) ---

func TestWriter_WritesAllDates(t *testing.T) {
	if _, err := exec.LookPath("exiftool"); err != nil {
		t.Skip("exiftool not on PATH")
	}
	path := writeJPEG(t, t.TempDir(), "IMG_2023-04-15-153000.jpg")

	w := NewWriter("")
	defer w.Close()
	if err := w.WriteDates(context.Background(), NewCommand("", path, testDate, true)); err != nil {
		t.Fatalf("WriteDates: %v", err)
	}

	et, err := exiftool.NewExiftool()
	if err != nil {
		t.Fatal(err)
	}
	defer et.Close()
	md := et.ExtractMetadata(path)
	if len(md) != 1 || md[0].Err != nil {
		t.Fatalf("ExtractMetadata: %+v", md)
	}
	got, err := md[0].GetString("DateTimeOriginal")
	if err != nil {
		t.Fatalf("DateTimeOriginal: %v", err)
	}
	if got != "2023:04:15 15:30:00" {
		t.Errorf("DateTimeOriginal = %q", got)
	}
	if _, err := os.Stat(path + "_original"); err == nil {
		t.Error("backup written despite overwrite")
	}
}

func TestWriter_MissingFile(t *testing.T) {
	if _, err := exec.LookPath("exiftool"); err != nil {
		t.Skip("exiftool not on PATH")
	}
	w := NewWriter("")
	defer w.Close()
	missing := filepath.Join(t.TempDir(), "gone.jpg")
	if err := w.WriteDates(context.Background(), NewCommand("", missing, testDate, true)); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriter_BackupFollowsFirstCommand(t *testing.T) {
	if _, err := exec.LookPath("exiftool"); err != nil {
		t.Skip("exiftool not on PATH")
	}
	dir := t.TempDir()
	keep := writeJPEG(t, dir, "IMG_2023-04-15-153000.jpg")
	other := writeJPEG(t, dir, "IMG_2023-04-16-153000.jpg")

	w := NewWriter("")
	defer w.Close()
	if err := w.WriteDates(context.Background(), NewCommand("", keep, testDate, false)); err != nil {
		t.Fatalf("WriteDates: %v", err)
	}
	if _, err := os.Stat(keep + "_original"); err != nil {
		t.Errorf("no backup for a keep-original command: %v", err)
	}

	err := w.WriteDates(context.Background(), NewCommand("", other, testDate, true))
	if !errors.Is(err, ErrOverwriteMismatch) {
		t.Errorf("err = %v, want ErrOverwriteMismatch", err)
	}
}

func writeJPEG(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, image.NewRGBA(image.Rect(0, 0, 8, 8)), nil); err != nil {
		t.Fatal(err)
	}
	return path
}
