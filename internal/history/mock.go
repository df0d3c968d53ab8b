package history

// Mock is an in-memory Recorder for tests and for runs with history disabled.
type Mock struct {
	Entries []Entry
	Err     error
	closed  bool
}

// NewMock creates an empty mock journal.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Record(e Entry) error {
	if m.Err != nil {
		return m.Err
	}
	m.Entries = append(m.Entries, e)
	return nil
}

func (m *Mock) List(limit int) ([]Entry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]Entry, 0, len(m.Entries))
	for i := len(m.Entries) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, m.Entries[i])
	}
	return out, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	return m.closed
}

// Verify Mock implements Recorder at compile time.
var _ Recorder = (*Mock)(nil)
