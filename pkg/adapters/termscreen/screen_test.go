package termscreen

import (
	"testing"

	"github.com/user/termplay/pkg/ports"
)

func TestParseKeys(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []ports.KeyEvent
	}{
		{
			name:  "printable runes",
			input: []byte("qm "),
			want: []ports.KeyEvent{
				{Key: ports.KeyRune, Rune: 'q'},
				{Key: ports.KeyRune, Rune: 'm'},
				{Key: ports.KeyRune, Rune: ' '},
			},
		},
		{
			name:  "arrow keys",
			input: []byte("\x1b[A\x1b[B\x1b[C\x1b[D"),
			want: []ports.KeyEvent{
				{Key: ports.KeyUp},
				{Key: ports.KeyDown},
				{Key: ports.KeyRight},
				{Key: ports.KeyLeft},
			},
		},
		{
			name:  "lone escape",
			input: []byte{0x1b},
			want:  []ports.KeyEvent{{Key: ports.KeyEscape}},
		},
		{
			name:  "ctrl-c",
			input: []byte{0x03},
			want:  []ports.KeyEvent{{Key: ports.KeyCtrlC}},
		},
		{
			name:  "unknown csi sequence ignored",
			input: []byte("\x1b[Zx"),
			want:  []ports.KeyEvent{{Key: ports.KeyRune, Rune: 'x'}},
		},
		{
			name:  "control bytes ignored",
			input: []byte{0x00, 0x0a, 0x7f},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseKeys(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d events %v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("event %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRestoreWithoutSetup(t *testing.T) {
	s := New()
	if err := s.Restore(); err != nil {
		t.Errorf("Restore before Setup failed: %v", err)
	}
	if err := s.Restore(); err != nil {
		t.Errorf("second Restore failed: %v", err)
	}
}
