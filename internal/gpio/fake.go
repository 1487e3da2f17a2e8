package gpio

import "errors"

// FakeOutput is a test double for an output pin.
type FakeOutput struct {
	// State is the current commanded state.
	State bool

	// Sets counts Set calls.
	Sets int

	// SetError, if set, will be returned by Set (state is left unchanged).
	SetError error
}

// Set records the commanded state.
func (f *FakeOutput) Set(on bool) error {
	f.Sets++
	if f.SetError != nil {
		return f.SetError
	}
	f.State = on
	return nil
}

// Get returns the current commanded state.
func (f *FakeOutput) Get() bool { return f.State }

// FakeInput is a test double that returns scripted button levels.
type FakeInput struct {
	// Levels contains scripted line levels (true = high).
	// Each call to Read() consumes the next level.
	Levels []bool

	// index tracks current position in Levels
	index int

	// ReadError, if set, will be returned by Read()
	ReadError error
}

// NewFakeInput creates a FakeInput with the given levels.
func NewFakeInput(levels []bool) *FakeInput {
	return &FakeInput{Levels: levels}
}

// Read returns the next scripted level.
// If levels are exhausted, returns the last level repeatedly.
func (f *FakeInput) Read() (bool, error) {
	if f.ReadError != nil {
		return false, f.ReadError
	}

	if len(f.Levels) == 0 {
		return false, errors.New("no levels configured")
	}

	lv := f.Levels[f.index]
	if f.index < len(f.Levels)-1 {
		f.index++
	}

	return lv, nil
}

// Reset resets the input to the beginning of the script.
func (f *FakeInput) Reset() {
	f.index = 0
}
