package messages

// ReloadMsg asks the model to list Dir again after a filesystem change.
type ReloadMsg struct {
	Dir string
}

// ErrorMsg carries a failure to show in the status line.
type ErrorMsg struct {
	Err error
}
