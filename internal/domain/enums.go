package domain

// PermissionLevel is the access level a share grant confers on a collection.
type PermissionLevel string

const (
	PermissionRead PermissionLevel = "read"
	PermissionEdit PermissionLevel = "edit"
)

// ValidPermissionLevels enumerates the accepted grant levels.
var ValidPermissionLevels = map[PermissionLevel]bool{
	PermissionRead: true,
	PermissionEdit: true,
}

// AuthProvider identifies how a user account authenticates.
type AuthProvider string

const (
	ProviderPassword AuthProvider = "password"
	ProviderGoogle   AuthProvider = "google"
)

// PosterType represents the allowed poster image types for upload.
type PosterType string

const (
	PosterTypeJPG PosterType = "jpg"
	PosterTypePNG PosterType = "png"
)

// AllowedPosterContentTypes maps MIME content types back to PosterType.
var AllowedPosterContentTypes = map[string]PosterType{
	"image/jpeg": PosterTypeJPG,
	"image/png":  PosterTypePNG,
}
