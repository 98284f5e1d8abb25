// Package errs defines the error vocabulary shared by the domain, the
// repositories and the HTTP adapter.
//
// Validation failures come in three kinds, each a typed error that unwraps
// to a sentinel:
//   - ValueIsRequiredError (ErrValueIsRequired): an absent name, courier or location
//   - ValueIsInvalidError (ErrValueIsInvalid): an unknown status or transport, a non-positive weight
//   - ValueIsOutOfRangeError (ErrValueIsOutOfRange): a coordinate off the grid
//
// IsValidation matches any of them, also inside errors.Join results, which
// is how the HTTP adapter turns them into 400 responses.
//
// ObjectNotFoundError (ErrObjectNotFound) is returned by repository lookups.
//
//	if _, err := repo.Get(ctx, id); errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
package errs
