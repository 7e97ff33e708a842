package core

// InputMultiplexer forwards input to a stack of processors, top first.
// Propagation stops at the first processor that handles the event.
type InputMultiplexer struct{ list []InputProcessor }

func NewInputMultiplexer(ps ...InputProcessor) *InputMultiplexer {
	return &InputMultiplexer{list: append([]InputProcessor(nil), ps...)}
}

func (m *InputMultiplexer) Push(p InputProcessor) { m.list = append(m.list, p) }
func (m *InputMultiplexer) Pop() (InputProcessor, bool) {
	if len(m.list) == 0 {
		return nil, false
	}
	i := len(m.list) - 1
	p := m.list[i]
	m.list = m.list[:i]
	return p, true
}

func (m *InputMultiplexer) Len() int { return len(m.list) }

func (m *InputMultiplexer) HandleInput(ev InputEvent) bool {
	for i := len(m.list) - 1; i >= 0; i-- {
		if m.list[i].HandleInput(ev) {
			return true
		}
	}
	return false
}

// InputFunc adapts a function to InputProcessor.
type InputFunc func(ev InputEvent) bool

func (f InputFunc) HandleInput(ev InputEvent) bool { return f(ev) }
