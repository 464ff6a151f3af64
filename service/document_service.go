package service

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"

	"github.com/hitesh0303/union-coders/types"
	"github.com/hitesh0303/union-coders/utils"
)

var (
	ErrUnsupportedType = errors.New("unsupported file type, please upload a .txt, .pdf or .docx file")
	ErrEmptyDocument   = errors.New("the uploaded file is empty")
)

const (
	mimePDF  = "application/pdf"
	mimeText = "text/plain"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	docxDocumentXMLPath = "word/document.xml"
)

// wtTag matches <w:t>text</w:t> or <w:t xml:space="preserve">text</w:t>.
var wtTag = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)

var xmlEntities = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

// DocumentService extracts text from uploaded files and splits it into
// chunks small enough to send to the model in one call.
type DocumentService struct {
	maxChunkSize int
	subChunkSize int
}

var DefaultDocumentServiceConfig = types.DocumentServiceConfig{
	MaxChunkSize: 15000,
	SubChunkSize: 8000,
}

func NewDocumentService(config types.DocumentServiceConfig) *DocumentService {
	if config.MaxChunkSize <= 0 {
		config.MaxChunkSize = DefaultDocumentServiceConfig.MaxChunkSize
	}
	if config.SubChunkSize <= 0 {
		config.SubChunkSize = DefaultDocumentServiceConfig.SubChunkSize
	}
	return &DocumentService{
		maxChunkSize: config.MaxChunkSize,
		subChunkSize: config.SubChunkSize,
	}
}

// ExtractText sniffs the MIME type of content and returns the extracted text
// along with the detected type. Returns ErrUnsupportedType for anything other
// than PDF, DOCX, and plain text, and ErrEmptyDocument when extraction yields
// only whitespace.
func (s *DocumentService) ExtractText(content []byte) (string, string, error) {
	mime := mimetype.Detect(content)

	var text string
	var err error
	switch {
	case mime.Is(mimePDF):
		text, err = extractPDF(content)
	case mime.Is(mimeDOCX):
		text, err = extractDOCX(content)
	case mime.Is(mimeText):
		text = utils.DecodeText(content)
	default:
		return "", mime.String(), ErrUnsupportedType
	}
	if err != nil {
		return "", mime.String(), err
	}

	text = utils.CleanText(text)
	if text == "" {
		return "", mime.String(), ErrEmptyDocument
	}
	return text, mime.String(), nil
}

// ChunkText splits text into chunks of at most the configured size, breaking
// on word boundaries.
func (s *DocumentService) ChunkText(text string) []string {
	return chunkBySize(text, s.maxChunkSize)
}

// SubChunk re-splits a chunk that failed to simplify at the smaller size.
func (s *DocumentService) SubChunk(chunk string) []string {
	return chunkBySize(chunk, s.subChunkSize)
}

func chunkBySize(text string, chunkSize int) []string {
	words := strings.Fields(text)
	var chunks []string
	var current []string
	currentSize := 0

	for _, word := range words {
		wordSize := len(word) + 1 // +1 for the joining space
		if currentSize+wordSize > chunkSize && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))
			current = current[:0]
			currentSize = 0
		}
		current = append(current, word)
		currentSize += wordSize
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}
	return chunks
}

func extractPDF(content []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open PDF: %w", err)
	}
	var buf bytes.Buffer
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", i, err)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n\n")
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}

func extractDOCX(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open DOCX: %w", err)
	}
	for _, f := range zr.File {
		if f.Name != docxDocumentXMLPath {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open document body: %w", err)
		}
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			rc.Close()
			return "", fmt.Errorf("read document body: %w", err)
		}
		rc.Close()

		var sb strings.Builder
		for _, m := range wtTag.FindAllSubmatch(buf.Bytes(), -1) {
			sb.WriteString(xmlEntities.Replace(string(m[1])))
			sb.WriteByte(' ')
		}
		return sb.String(), nil
	}
	return "", errors.New("no document body found in DOCX")
}
