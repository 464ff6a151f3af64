package service

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hitesh0303/union-coders/types"
)

func newTestDocumentService() *DocumentService {
	return NewDocumentService(types.DocumentServiceConfig{
		MaxChunkSize: 50,
		SubChunkSize: 20,
	})
}

func TestChunkTextShortTextSingleChunk(t *testing.T) {
	s := newTestDocumentService()
	chunks := s.ChunkText("a short document")
	require.Len(t, chunks, 1)
	assert.Equal(t, "a short document", chunks[0])
}

func TestChunkTextRespectsSizeLimit(t *testing.T) {
	s := newTestDocumentService()
	text := strings.Repeat("word ", 100)
	chunks := s.ChunkText(text)
	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 50)
	}
}

func TestChunkTextPreservesAllWords(t *testing.T) {
	s := newTestDocumentService()
	text := strings.Repeat("alpha beta gamma ", 30)
	chunks := s.ChunkText(text)

	rejoined := strings.Fields(strings.Join(chunks, " "))
	assert.Equal(t, strings.Fields(text), rejoined)
}

func TestChunkTextOversizedWord(t *testing.T) {
	s := newTestDocumentService()
	long := strings.Repeat("x", 80)
	chunks := s.ChunkText("small " + long + " tail")
	// A word larger than the chunk size still lands in exactly one chunk.
	require.Len(t, chunks, 3)
	assert.Equal(t, long, chunks[1])
}

func TestSubChunkSmallerThanChunk(t *testing.T) {
	s := newTestDocumentService()
	text := strings.Repeat("word ", 100)
	chunks := s.ChunkText(text)
	subChunks := s.SubChunk(chunks[0])
	require.NotEmpty(t, subChunks)
	for _, sub := range subChunks {
		assert.LessOrEqual(t, len(sub), 20)
	}
}

func TestExtractTextPlain(t *testing.T) {
	s := newTestDocumentService()
	text, mime, err := s.ExtractText([]byte("This is a rental agreement."))
	require.NoError(t, err)
	assert.Equal(t, "This is a rental agreement.", text)
	assert.Contains(t, mime, "text/plain")
}

func TestExtractTextLatin1Fallback(t *testing.T) {
	s := newTestDocumentService()
	// Latin-1 encoded "café" is not valid UTF-8.
	text, _, err := s.ExtractText([]byte{'c', 'a', 'f', 0xe9, ' ', 'l', 'e', 'a', 's', 'e'})
	require.NoError(t, err)
	assert.Equal(t, "café lease", text)
}

func TestExtractTextEmptyDocument(t *testing.T) {
	s := newTestDocumentService()
	_, _, err := s.ExtractText([]byte("   \n\t  "))
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestExtractTextUnsupportedType(t *testing.T) {
	s := newTestDocumentService()
	// PNG magic bytes.
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
	_, mime, err := s.ExtractText(png)
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.Equal(t, "image/png", mime)
}

func TestExtractTextDOCX(t *testing.T) {
	s := newTestDocumentService()
	content := buildDOCX(t, []string{"The tenant shall pay rent", "on the first of each month."})
	text, mime, err := s.ExtractText(content)
	require.NoError(t, err)
	assert.Equal(t, mimeDOCX, mime)
	assert.Contains(t, text, "The tenant shall pay rent")
	assert.Contains(t, text, "on the first of each month.")
}

func TestExtractTextDOCXEntities(t *testing.T) {
	s := newTestDocumentService()
	content := buildDOCX(t, []string{"Smith &amp; Sons &lt;LLC&gt;"})
	text, _, err := s.ExtractText(content)
	require.NoError(t, err)
	assert.Contains(t, text, "Smith & Sons <LLC>")
}

func TestExtractTextCorruptPDF(t *testing.T) {
	s := newTestDocumentService()
	_, mime, err := s.ExtractText([]byte("%PDF-1.7\nnot actually a pdf"))
	require.Error(t, err)
	assert.Equal(t, "application/pdf", mime)
}

// buildDOCX writes a minimal DOCX container with one paragraph per text.
func buildDOCX(t *testing.T, texts []string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	contentTypes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`
	w, err := zw.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(contentTypes))
	require.NoError(t, err)

	rels := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`
	w, err = zw.Create("_rels/.rels")
	require.NoError(t, err)
	_, err = w.Write([]byte(rels))
	require.NoError(t, err)

	var body strings.Builder
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, text := range texts {
		body.WriteString(`<w:p><w:r><w:t>` + text + `</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)
	w, err = zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(body.String()))
	require.NoError(t, err)

	require.NoError(t, zw.Close())
	return buf.Bytes()
}
