package dispatch

// --------------------------------------------------------------------------
// Status Type Definition
// --------------------------------------------------------------------------

// StatusType defines the outcome class of an executed command.
type StatusType uint8

const (
	// StatusOK is a successful execution with a text result
	StatusOK StatusType = iota
	// StatusOKBinary is a successful execution with a binary result (e.g. an image buffer)
	StatusOKBinary
	// StatusError is a failed execution with a descriptive message
	StatusError
	// StatusInvalidArgument is a failed execution caused by bad arguments
	StatusInvalidArgument
)

// String returns the string representation of a StatusType.
func (t StatusType) String() string {
	switch t {
	case StatusOK:
		return "ok"
	case StatusOKBinary:
		return "ok (binary)"
	case StatusError:
		return "error"
	case StatusInvalidArgument:
		return "invalid argument"
	default:
		return "unknown"
	}
}

// --------------------------------------------------------------------------
// ExecStatus
// --------------------------------------------------------------------------

// ExecStatus is the result envelope of one dispatched command. It is a plain
// value; handlers construct it via the factory functions below.
type ExecStatus struct {
	Type   StatusType
	Text   string
	Binary []byte
}

// OK creates a successful result carrying text
func OK(text string) ExecStatus {
	return ExecStatus{Type: StatusOK, Text: text}
}

// OKBinary creates a successful result carrying raw bytes
func OKBinary(data []byte) ExecStatus {
	return ExecStatus{Type: StatusOKBinary, Binary: data}
}

// Error creates a failed result with a descriptive message
func Error(msg string) ExecStatus {
	return ExecStatus{Type: StatusError, Text: msg}
}

// InvalidArgument is the result for commands invoked with bad arguments
var InvalidArgument = ExecStatus{Type: StatusInvalidArgument, Text: "argument is invalid"}

// Payload serializes the status into a response payload. Text results travel
// as-is, binary results travel raw, errors are prefixed with "error " so a
// client can tell them apart from success text. The wire format forbids empty
// payloads, so an empty success, text or binary, is sent as a single space.
func (s ExecStatus) Payload() []byte {
	switch s.Type {
	case StatusOKBinary:
		if len(s.Binary) == 0 {
			return []byte(" ")
		}
		return s.Binary
	case StatusError, StatusInvalidArgument:
		return []byte("error " + s.Text)
	default:
		if s.Text == "" {
			return []byte(" ")
		}
		return []byte(s.Text)
	}
}
