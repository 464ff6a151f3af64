package types

// Document holds the text of one uploaded file for the duration of a single
// request. Nothing here is persisted.
type Document struct {
	Filename   string // original filename from the upload
	MimeType   string // detected MIME type of the uploaded bytes
	Original   string // extracted text
	Simplified string // plain-language rewrite
}

// DocumentServiceConfig contains configuration options for text chunking
type DocumentServiceConfig struct {
	MaxChunkSize int // Maximum byte size for text chunks
	SubChunkSize int // Smaller size used when a chunk fails to simplify
}
