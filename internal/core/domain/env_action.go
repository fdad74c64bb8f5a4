package domain

// EnvAction is how a scoped mutation combines a new value with the current one.
type EnvAction uint8

const (
	// EnvReplace overwrites variables that are already set and leaves unset ones alone.
	EnvReplace EnvAction = iota
	// EnvInsert sets variables to exactly the given value.
	EnvInsert
	// EnvAppend joins the given value onto the current one with the path list separator,
	// new value first. Unset variables get the bare value.
	EnvAppend
)

// String returns the action name.
func (a EnvAction) String() string {
	switch a {
	case EnvReplace:
		return "replace"
	case EnvInsert:
		return "insert"
	case EnvAppend:
		return "append"
	default:
		return "unknown"
	}
}
