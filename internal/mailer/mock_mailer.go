package mailer

type MockMailer struct {
	SentTo []string
}

func (m *MockMailer) Send(recipient, templateFile string, data any) error {
	m.SentTo = append(m.SentTo, recipient)
	return nil
}
