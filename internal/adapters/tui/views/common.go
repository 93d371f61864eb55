package views

// ViewState is embedded by every view model: the terminal size and one
// flash line shown above the key help.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize records the terminal dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width, s.Height = width, height
}

// SetMessage replaces the flash line
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message, s.MessageErr = msg, isErr
}

// Fail shows err as the flash line; a nil err clears it
func (s *ViewState) Fail(err error) {
	if err == nil {
		s.ClearMessage()
		return
	}
	s.SetMessage(err.Error(), true)
}

// ClearMessage removes the flash line
func (s *ViewState) ClearMessage() {
	s.SetMessage("", false)
}
