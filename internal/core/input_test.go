package core

import "testing"

func TestParseMoveCode(t *testing.T) {
	tests := []struct {
		in      string
		want    MoveCode
		wantErr bool
	}{
		{"l", MoveLeft, false},
		{"r", MoveRight, false},
		{"w", MoveJump, false},
		{"", "", true},
		{"left", "", true},
		{"W", "", true},
	}

	for _, tc := range tests {
		got, err := ParseMoveCode(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseMoveCode(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMoveCode(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestActionMoveCode(t *testing.T) {
	tests := []struct {
		action Action
		code   MoveCode
		ok     bool
	}{
		{ActionLeft, MoveLeft, true},
		{ActionRight, MoveRight, true},
		{ActionJump, MoveJump, true},
		{ActionRestart, "", false},
		{ActionQuit, "", false},
	}

	for _, tc := range tests {
		code, ok := tc.action.MoveCode()
		if code != tc.code || ok != tc.ok {
			t.Errorf("%s.MoveCode() = (%q, %v), expected (%q, %v)", tc.action, code, ok, tc.code, tc.ok)
		}
	}
}
