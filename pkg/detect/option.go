// pkg/detect/option.go
package detect

import "github.com/spf13/pflag"

// OptionDescriptor describes the command-line flag that overrides the
// search roots. The caller decides which flag set it lands on.
type OptionDescriptor struct {
	Name string // Flag name without dashes
	Type string // Always "string"
	Help string
	Dest string // Key the value is stored under in the caller's options
}

// Option returns the override flag descriptor for spec
func Option(spec LibrarySpec) OptionDescriptor {
	return OptionDescriptor{
		Name: spec.Name,
		Type: "string",
		Help: "path to " + spec.Name,
		Dest: spec.Name,
	}
}

// Register adds the flag to fs and returns where its value will be stored
func (o OptionDescriptor) Register(fs *pflag.FlagSet) *string {
	return fs.String(o.Name, "", o.Help)
}

// RequestFromFlags builds a Request from a parsed flag set.
// A flag that was never registered yields an empty request.
func (o OptionDescriptor) RequestFromFlags(fs *pflag.FlagSet) Request {
	value, err := fs.GetString(o.Name)
	if err != nil {
		return Request{}
	}
	return Request{OverridePath: value}
}
