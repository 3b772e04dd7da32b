package timing

import "errors"

// ErrNotATimingTree signals that the given root is not a recognized
// timing root tag, i.e. the slide has no animations to extract. This
// is a legitimate, expected outcome, not an exception - callers record
// zero events and move on.
var ErrNotATimingTree = errors.New("not a timing tree")
