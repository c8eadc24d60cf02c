package types

// Media types a descriptor can carry. The set is closed.
const (
	MediaTypePDF         = "application/pdf"
	MediaTypeMSWord      = "application/msword"
	MediaTypeWordOpenXML = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypeJPEG        = "image/jpeg"
	MediaTypePNG         = "image/png"
	MediaTypeGIF         = "image/gif"
	MediaTypeBinary      = "application/octet-stream"
)
