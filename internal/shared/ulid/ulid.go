package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string, used as run and request identifiers.
var NewULID = func() string {
	return ulid.Make().String()
}
