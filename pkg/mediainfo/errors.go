package mediainfo

import "fmt"

// MissingStreamError reports that a derivation required a stream of a
// particular type and the report contains none. Derivations with a
// documented fallback return the fallback instead of this error.
type MissingStreamError struct {
	Type CodecType
}

func (e *MissingStreamError) Error() string {
	return fmt.Sprintf("mediainfo: no %s stream present", e.Type)
}
