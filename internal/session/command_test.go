package session

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want Command
	}{
		{"b", CmdToggleBuzzer},
		{"l", CmdToggleLED},
		{"r", CmdReadSensors},
		{"s", CmdShowHistory},
		{"m", CmdModeAuto},
		{"m\r\n", CmdModeAuto},
		{"b\n", CmdToggleBuzzer},
		{" l ", CmdToggleLED},
		{"B", CmdToggleBuzzer},
		{"M\r\n", CmdModeAuto},
		{"x", CmdUnknown},
		{"", CmdUnknown},
		{"\r\n", CmdUnknown},
		{"bl", CmdUnknown},
		{"mm", CmdUnknown},
	}

	for _, tt := range tests {
		if got := Parse([]byte(tt.raw)); got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
