package errors

import "net/http"

var (
	ErrPlaceNotFound = New(
		"PLACE_NOT_FOUND",
		"Place not found",
		http.StatusNotFound,
	)

	ErrCategoryNotFound = New(
		"CATEGORY_NOT_FOUND",
		"Category not found",
		http.StatusNotFound,
	)

	ErrLanguageNotFound = New(
		"LANGUAGE_NOT_FOUND",
		"Language not found",
		http.StatusNotFound,
	)

	// ErrNoPlacesMatch is the wheel-spin miss. Its message is part of the
	// public contract and is rendered as {"detail": <message>}.
	ErrNoPlacesMatch = New(
		"NO_PLACES_MATCH",
		"No places found matching your criteria.",
		http.StatusNotFound,
	)

	ErrInvalidPlaceID = New(
		"INVALID_PLACE_ID",
		"Invalid place ID",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrTranslationFailed = New(
		"TRANSLATION_FAILED",
		"Translation provider request failed",
		http.StatusBadGateway,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
