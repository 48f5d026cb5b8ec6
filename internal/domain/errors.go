package domain

import "errors"

var (
	ErrNotFound               = errors.New("resource not found")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrUserNotFound           = errors.New("no user registered with that email")
	ErrDuplicateGrant         = errors.New("collection already shared with this user")
	ErrAccessDenied           = errors.New("no sharing grant for this collection")
	ErrInsufficientPermission = errors.New("sharing grant does not allow editing")
	ErrInvalidPermission      = errors.New("invalid permission level")
	ErrSelfShare              = errors.New("cannot share a collection with its owner")
	ErrTitleRequired          = errors.New("movie title is required")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrDuplicateEmail         = errors.New("email already registered")
	ErrUserInactive           = errors.New("user is inactive")
	ErrSocialAuthTokenInvalid = errors.New("social authentication token is invalid")
	ErrUnsupportedFileType    = errors.New("unsupported file type")
	ErrFileTooLarge           = errors.New("file exceeds maximum allowed size")
)
