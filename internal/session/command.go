package session

import "strings"

// Command is one operator command from the serial console.
type Command int

const (
	// CmdUnknown is any input that is not a recognized command.
	CmdUnknown Command = iota
	// CmdToggleBuzzer flips the buzzer.
	CmdToggleBuzzer
	// CmdToggleLED flips the LED.
	CmdToggleLED
	// CmdReadSensors performs one sensor read and records it.
	CmdReadSensors
	// CmdShowHistory prints the stored readings.
	CmdShowHistory
	// CmdModeAuto switches back to automatic mode.
	CmdModeAuto
)

// maxCommandBytes is how much input one ready poll consumes: the command
// character plus a tolerated CR/LF tail.
const maxCommandBytes = 3

// Parse normalizes raw input (trim whitespace, lower-case) and maps it to
// a command. Commands are single characters; anything else is CmdUnknown.
func Parse(raw []byte) Command {
	switch strings.ToLower(strings.TrimSpace(string(raw))) {
	case "b":
		return CmdToggleBuzzer
	case "l":
		return CmdToggleLED
	case "r":
		return CmdReadSensors
	case "s":
		return CmdShowHistory
	case "m":
		return CmdModeAuto
	default:
		return CmdUnknown
	}
}
