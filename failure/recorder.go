package failure

import "sync"

// Recorder is a Reporter that only remembers the messages it receives. It is
// how tests check the exact wording of a failure.
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

var _ Reporter = (*Recorder)(nil)

// Capture returns an empty Recorder.
func Capture() *Recorder {
	return &Recorder{}
}

// Fail records the message.
func (r *Recorder) Fail(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, message)
}

// Last returns the most recent message, if any.
func (r *Recorder) Last() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.messages) == 0 {
		return "", false
	}

	return r.messages[len(r.messages)-1], true
}

// Messages returns every recorded message, oldest first.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.messages))
	copy(out, r.messages)

	return out
}

// Reset forgets all recorded messages.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = nil
}
