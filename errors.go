package tweak

import "fmt"

// UnknownTypeError is returned by Register when the options name a widget
// type tag with no registered constructor.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("tweak: unknown widget type %q", e.Type)
}

// UnknownFolderError is returned by Register when the options reference a
// folder label that has not been registered yet. Folders must be registered
// before their children.
type UnknownFolderError struct {
	Folder string
}

func (e *UnknownFolderError) Error() string {
	return fmt.Sprintf("tweak: no folder registered with label %q", e.Folder)
}

// BindError is returned by Register when Object/Property cannot be resolved
// to a readable, writable value.
type BindError struct {
	Property string
	Reason   string
}

func (e *BindError) Error() string {
	return fmt.Sprintf("tweak: cannot bind property %q: %s", e.Property, e.Reason)
}
