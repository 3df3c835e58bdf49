package errmsg

import "errors"

var (
	NotFound         = errors.New("not found")
	NotMember        = errors.New("node is not a member of the list")
	EmptyList        = errors.New("list would become empty")
	NoSuchElement    = errors.New("no such element")
	EmptyCollection  = errors.New("empty collection")
	CapacityExceeded = errors.New("max capacity already reached")
)
