package uuid

import "errors"

var ErrInvalid = errors.New("the specified resource ID is not a valid UUID")
