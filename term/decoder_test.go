package term

import "testing"

func TestDecoderGroundBindings(t *testing.T) {
	tests := []struct {
		name string
		in   rune
		want Action
	}{
		{"ctrl-a home", 0x01, ActionMoveHome},
		{"ctrl-c break", 0x03, ActionBreak},
		{"ctrl-d delete-right", 0x04, ActionDeleteRightOrSoftEOF},
		{"backspace", 0x08, ActionDeleteLeft},
		{"del", DEL, ActionDeleteLeft},
		{"cr submit", 0x0D, ActionSubmit},
		{"lf submit", 0x0A, ActionSubmit},
		{"ctrl-k kill-to-end", 0x0B, ActionKillToEnd},
		{"ctrl-u kill-line", 0x15, ActionKillLine},
		{"ctrl-y yank", 0x19, ActionYank},
		{"tab inserts", 0x09, ActionInsert},
		{"letter inserts", 'a', ActionInsert},
		{"unknown control", 0x1C, ActionUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDecoder(nil)
			got := d.feed(tt.in)
			if got.action != tt.want {
				t.Errorf("feed(%#x) = %v, want %v", tt.in, got.action, tt.want)
			}
		})
	}
}

func TestDecoderArrowKeys(t *testing.T) {
	tests := []struct {
		final rune
		want  Action
	}{
		{'A', ActionHistoryPrev},
		{'B', ActionHistoryNext},
		{'C', ActionMoveRight},
		{'D', ActionMoveLeft},
	}
	for _, tt := range tests {
		d := newDecoder(nil)
		if a := d.feed(0x1B); a.action != ActionPending {
			t.Fatalf("feed(ESC) = %v, want pending", a.action)
		}
		if a := d.feed('['); a.action != ActionPending {
			t.Fatalf("feed([) = %v, want pending", a.action)
		}
		got := d.feed(tt.final)
		if got.action != tt.want {
			t.Errorf("feed(CSI %c) = %v, want %v", tt.final, got.action, tt.want)
		}
	}
}

func TestDecoderSplitAcrossFeeds(t *testing.T) {
	d := newDecoder(nil)
	d.feed(0x1B)
	// ESC, '[' and 'C' each arrive in a separate feed call, as they would
	// when the sequence is split across reads.
	if a := d.feed('['); a.action != ActionPending {
		t.Fatalf("feed([) = %v, want pending", a.action)
	}
	got := d.feed('C')
	if got.action != ActionMoveRight {
		t.Fatalf("feed(C) = %v, want MoveRight", got.action)
	}
}

func TestDecoderOverrideBindings(t *testing.T) {
	d := newDecoder(map[byte]Action{0x01: ActionRedraw})
	if a := d.feed(0x01); a.action != ActionRedraw {
		t.Errorf("override binding ignored: got %v, want Redraw", a.action)
	}
	// Unoverridden keys still fall back to the defaults.
	if a := d.feed(0x03); a.action != ActionBreak {
		t.Errorf("default binding lost: got %v, want Break", a.action)
	}
}

func TestDecoderResetDropsPendingEscape(t *testing.T) {
	d := newDecoder(nil)
	d.feed(0x1B)
	d.reset()
	got := d.feed('[')
	if got.action != ActionInsert {
		t.Fatalf("feed([) after reset = %v, want Insert (ground state treats '[' as a normal rune)", got.action)
	}
}
