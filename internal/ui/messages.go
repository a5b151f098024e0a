package ui

// chatReplyMsg carries the sommelier's reply (or failure) back into the
// event loop.
type chatReplyMsg struct {
	err   error
	reply string
}

// exportDoneMsg reports the outcome of writing an export file.
type exportDoneMsg struct {
	err  error
	path string
}
