package nudge

type mockNotifier struct {
	called bool
	habits []string
	err    error
}

func (m *mockNotifier) SendNudge(habits []string) error {
	m.called = true
	m.habits = habits
	return m.err
}
