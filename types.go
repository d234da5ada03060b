package hierclust

import "errors"

// ErrUnknownAlgo indicates a requested algo index is outside the CLI's
// stable 0..4 range.
var ErrUnknownAlgo = errors.New("hierclust: unknown algo index")
