package service

import "errors"

// Sentinel errors surfaced to handlers. Anything else coming out of a service
// call is a storage failure and maps to a 500.
var (
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrPONotFound       = errors.New("purchase order not found")
	ErrAlreadyReceived  = errors.New("purchase order already received")
	ErrDuplicateSKU     = errors.New("sku already exists")
)
