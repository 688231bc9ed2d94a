package storage

import "errors"

var (
	// ErrInit wraps any failure to open a backend or create its schema.
	// Fatal for the session; callers should not proceed past it.
	ErrInit = errors.New("storage: init failed")

	// ErrWrite wraps an I/O failure during create/update/delete. Prior
	// state is left intact: the structured backend relies on its native
	// transactionality, the document backend never commits a partial
	// serialized write.
	ErrWrite = errors.New("storage: write failed")
)
