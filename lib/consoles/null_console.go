package consoles

type nullConsole struct{}

// NewNullConsole discards everything. Used by tests and embedded callers.
func NewNullConsole() Console {
	return nullConsole{}
}

func (nullConsole) Printf(string, ...any) {}

func (nullConsole) Prepare(string, ...any) string { return "" }

func (nullConsole) PushPrefix(string, ...any) {}

func (nullConsole) PopPrefix() {}
