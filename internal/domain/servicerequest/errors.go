package servicerequest

import "roadside-marketplace/internal/pkg/errs"

var (
	ErrInvalidServiceType = errs.Define(errs.KindValidation, "INVALID_SERVICE_TYPE", "service type must be one of towing, battery, tire, fuel, locksmith")
	ErrEmptyLocation      = errs.Define(errs.KindValidation, "EMPTY_LOCATION", "location cannot be empty")
	ErrLocationTooLong    = errs.Define(errs.KindValidation, "LOCATION_TOO_LONG", "location exceeds maximum length")
	ErrInvalidPrice       = errs.Define(errs.KindValidation, "INVALID_PRICE", "price must be a positive number of credits")
	ErrInvalidFinalAmount = errs.Define(errs.KindValidation, "INVALID_FINAL_AMOUNT", "final amount must be a positive number of credits")
	ErrOfferMismatch      = errs.Define(errs.KindValidation, "OFFER_REQUEST_MISMATCH", "offer does not belong to this request")

	ErrRequestNotOpen         = errs.Define(errs.KindStateConflict, "REQUEST_NOT_OPEN", "request is no longer open")
	ErrOfferNotPending        = errs.Define(errs.KindStateConflict, "OFFER_NOT_PENDING", "offer is no longer pending")
	ErrRequestNotMatched      = errs.Define(errs.KindStateConflict, "REQUEST_NOT_MATCHED", "request has not been matched with a partner")
	ErrRequestNotInProgress   = errs.Define(errs.KindStateConflict, "REQUEST_NOT_IN_PROGRESS", "request is not in progress")
	ErrCannotCancelTerminal   = errs.Define(errs.KindStateConflict, "CANNOT_CANCEL_TERMINAL", "request is already completed or cancelled")
	ErrCannotCancelInProgress = errs.Define(errs.KindStateConflict, "CANNOT_CANCEL_IN_PROGRESS", "request cannot be cancelled while work is in progress")
	ErrDuplicateOffer         = errs.Define(errs.KindStateConflict, "DUPLICATE_OFFER", "partner already has a pending offer on this request")

	// ErrOfferAlreadyAccepted is returned as a warning next to a successful cancellation.
	ErrOfferAlreadyAccepted = errs.Define(errs.KindStateConflict, "OFFER_ALREADY_ACCEPTED", "an offer had already been accepted; the assigned partner must be informed")

	ErrRequestNotFound = errs.Define(errs.KindNotFound, "REQUEST_NOT_FOUND", "request not found")
	ErrOfferNotFound   = errs.Define(errs.KindNotFound, "OFFER_NOT_FOUND", "offer not found")
)
