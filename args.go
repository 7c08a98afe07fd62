package tizen

// Args holds the command-line flags that act as a configuration source.
type Args struct {
	// Emulator selects the emulator architecture (--emulator / -e).
	Emulator bool
}

func (a Args) lookup(k Key) (string, bool) {
	switch k {
	case IsEmulator:
		if a.Emulator {
			return "true", true
		}
	}
	return "", false
}
