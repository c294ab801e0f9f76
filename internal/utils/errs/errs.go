package errs

import "errors"

var (
	ErrGalleryNotFound      = errors.New("gallery not found")
	ErrMaxGalleriesReached  = errors.New("server is busy (max loading galleries limit)")
	ErrTooManyURLs          = errors.New("too many urls per gallery")
	ErrNoURLs               = errors.New("no urls to fetch")
	ErrInvalidURL           = errors.New("invalid url (allowed schemes: http, https)")
	ErrGalleryNotReady      = errors.New("gallery is still loading")
	ErrImageNotFound        = errors.New("image not found")
	ErrTransport            = errors.New("transport error")
	ErrDecode               = errors.New("unable to decode image")
	ErrImageTooLarge        = errors.New("image exceeds size limit")
	ErrUnexpectedStatusCode = errors.New("unexpected response status")
)
