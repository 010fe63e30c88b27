package repository

import "errors"

// ErrNotFound is returned when a lookup matches no document. Repositories
// translate the driver's no-documents error so usecases never import it.
var ErrNotFound = errors.New("document not found")
