package domain

// Console is the line-oriented channel an interactive session talks over.
// ReadLine returns ErrInputClosed once the input is exhausted.
type Console interface {
	ReadLine(prompt string) (string, error)
	Info(msg string)
	Success(msg string)
	Warn(msg string)
	Error(msg string)
	Records(title string, records []Record)
}

// ConfigLoader loads session configuration from a file path.
type ConfigLoader interface {
	Load(path string) (Config, error)
}
