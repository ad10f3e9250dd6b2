package domain

import "errors"

var (
	ErrNotFound               = errors.New("resource not found")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrForbidden              = errors.New("forbidden")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserInactive           = errors.New("user is inactive")
	ErrDuplicateEmail         = errors.New("email already registered")
	ErrProfileIncomplete      = errors.New("business profile is not set")
	ErrDuplicateInvoiceNumber = errors.New("invoice number already used")
	ErrInvalidInvoiceData     = errors.New("invalid invoice data")
	ErrInvalidInvoiceNumber   = errors.New("incorrect invoice number")
	ErrEmailSendFailed        = errors.New("sending email failed")
	ErrExportFailed           = errors.New("export generation failed")
)
