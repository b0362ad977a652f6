package templates

import "time"

// Template kinds correspond to the artifact kinds they render.
const (
	KindResume      = "resume"
	KindCoverLetter = "cover_letter"
)

// Template is an uploaded DOCX template. At most one template is active per
// kind; uploading another replaces it.
type Template struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	FileKey    string    `json:"fileKey"`
	FileName   string    `json:"fileName"`
	SizeBytes  int64     `json:"sizeBytes"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// ValidKind reports whether the kind names a supported template slot.
func ValidKind(kind string) bool {
	return kind == KindResume || kind == KindCoverLetter
}
