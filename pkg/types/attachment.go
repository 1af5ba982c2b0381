package types

// Attachment is a file embedded in the document as base64. Data holds
// the decoded raw bytes.
type Attachment struct {
	FileName string `json:"file_name"`
	MimeType string `json:"mime_type"`
	Data     []byte `json:"data"`
}

// DefaultMimeType is assumed when the document omits the mime type.
const DefaultMimeType = "application/octet-stream"
