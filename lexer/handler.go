package lexer

// Handler bundles the package functions as a value, for callers that
// take their line processing as an interface.
type Handler struct{}

// Clean calls Clean.
func (Handler) Clean(line string) string { return Clean(line) }

// StripComments calls StripComments.
func (Handler) StripComments(line string) string { return StripComments(line) }

// Tokenize calls Tokenize.
func (Handler) Tokenize(line string) []string { return Tokenize(line) }

// IsNumber calls IsNumber.
func (Handler) IsNumber(token string) bool { return IsNumber(token) }

// ToNumber calls ToNumber.
func (Handler) ToNumber(token string) (uint8, error) { return ToNumber(token) }
