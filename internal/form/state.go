package form

// Canonical field names, in page order.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldMessage = "message"
)

// FieldNames is the fixed field order used for focus movement.
var FieldNames = []string{FieldName, FieldEmail, FieldPhone, FieldMessage}

// Submission is the form's lifecycle state. Only Idle and Error admit a new
// submission; Submitting blocks everything until the outcome resolves.
type Submission int

const (
	Idle Submission = iota
	Submitting
	Success
	Error
)

func (s Submission) String() string {
	switch s {
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "idle"
	}
}

// Field is one form input's state. Err is recomputed from Value on every
// change and blur, never carried across unrelated edits.
type Field struct {
	Name    string
	Value   string
	Err     ErrorKind
	Touched bool
}

// State owns the field values and the submission machine. The page mirrors
// these values into its text inputs; all decisions happen here.
type State struct {
	fields     []Field
	submission Submission
}

// NewState returns an empty, untouched form in Idle.
func NewState() *State {
	s := &State{fields: make([]Field, len(FieldNames))}
	for i, name := range FieldNames {
		s.fields[i] = Field{Name: name}
	}
	return s
}

// SetValue records an edit to the named field, applying the phone transform
// first and revalidating. Editing after a successful submission returns the
// machine to Idle.
func (s *State) SetValue(name, value string) {
	f := s.field(name)
	if f == nil {
		return
	}
	if name == FieldPhone {
		value = FormatPhone(value)
	}
	f.Value = value
	f.Err = validate(name, value)
	if s.submission == Success {
		s.submission = Idle
	}
}

// Blur marks the field touched and revalidates, so errors surface once the
// user leaves the field.
func (s *State) Blur(name string) {
	if f := s.field(name); f != nil {
		f.Touched = true
		f.Err = validate(name, f.Value)
	}
}

// Field returns a copy of the named field's state.
func (s *State) Field(name string) Field {
	if f := s.field(name); f != nil {
		return *f
	}
	return Field{}
}

// Fields returns copies of all fields in page order.
func (s *State) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Valid reports aggregate validity: every field validates against its
// current value. This gates the submit control.
func (s *State) Valid() bool {
	for _, f := range s.fields {
		if validate(f.Name, f.Value) != ErrNone {
			return false
		}
	}
	return true
}

// FirstInvalid returns the first field, in page order, that fails
// validation.
func (s *State) FirstInvalid() (string, bool) {
	for _, f := range s.fields {
		if validate(f.Name, f.Value) != ErrNone {
			return f.Name, true
		}
	}
	return "", false
}

// Submission returns the current lifecycle state.
func (s *State) Submission() Submission { return s.submission }

// Submit attempts to start a submission. It succeeds only from Idle or
// Error with a fully valid form; while Submitting it is a guaranteed no-op,
// which is the single in-flight guarantee. An invalid attempt performs no
// transition but marks every field touched so all errors surface; the
// caller is expected to focus the first invalid field.
func (s *State) Submit() bool {
	if s.submission != Idle && s.submission != Error {
		return false
	}
	if !s.Valid() {
		for i := range s.fields {
			s.fields[i].Touched = true
			s.fields[i].Err = validate(s.fields[i].Name, s.fields[i].Value)
		}
		return false
	}
	s.submission = Submitting
	return true
}

// Resolve applies the simulated submission outcome. Only valid while
// Submitting. Success resets every field to empty and untouched; failure
// preserves the values so the user can resubmit.
func (s *State) Resolve(success bool) {
	if s.submission != Submitting {
		return
	}
	if success {
		for i, name := range FieldNames {
			s.fields[i] = Field{Name: name}
		}
		s.submission = Success
	} else {
		s.submission = Error
	}
}

func (s *State) field(name string) *Field {
	for i := range s.fields {
		if s.fields[i].Name == name {
			return &s.fields[i]
		}
	}
	return nil
}

func validate(name, value string) ErrorKind {
	switch name {
	case FieldName:
		return ValidateName(value)
	case FieldEmail:
		return ValidateEmail(value)
	case FieldPhone:
		return ValidatePhone(value)
	case FieldMessage:
		return ValidateMessage(value)
	}
	return ErrNone
}
