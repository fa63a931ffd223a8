package apperrors

import (
	"net/http"
)

// Factories for errors that wrap a lower-level cause.

func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Auth ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Applications ---

// ErrAlreadyApplied: a live or previously deleted/accepted/cancelled
// application for the same job already exists.
var ErrAlreadyApplied = New(
	CodeConflict,
	"application",
	"You have already applied for this job",
	http.StatusConflict,
)

// ErrApplicantCapReached: the job's maxApplicants ceiling is full.
var ErrApplicantCapReached = New(
	CodeLimitExceeded,
	"application",
	"Application limit reached for this job",
	http.StatusConflict,
)

// ErrActiveApplicationCap: the applicant already holds the maximum number of
// active applications across all jobs.
var ErrActiveApplicationCap = New(
	CodeLimitExceeded,
	"application",
	"You have too many active applications",
	http.StatusConflict,
)

// ErrOfferAlreadyHeld: an applicant with an accepted application cannot apply
// elsewhere.
var ErrOfferAlreadyHeld = New(
	CodeConflict,
	"application",
	"You already have an accepted job",
	http.StatusConflict,
)

// ErrPositionsFilled: accept lost the capacity race or the job is full.
var ErrPositionsFilled = New(
	CodeConflict,
	"application",
	"All positions for this job are filled",
	http.StatusConflict,
)

var ErrInvalidApplicationStatus = New(
	CodeInvalidStatus,
	"application",
	"Status change not allowed",
	http.StatusForbidden,
)

// --- Ratings ---

// ErrRatingNotAllowed: no accepted or finished application links the two
// parties, so no rating edge may exist between them.
var ErrRatingNotAllowed = New(
	CodeForbidden,
	"rating",
	"You are not eligible to rate this party",
	http.StatusForbidden,
)

// --- Uploads ---

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)
