package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/hitesh0303/union-coders/types"
)

const (
	defaultMaxAttempts  = 3
	defaultRetryMinWait = 4 * time.Second
	defaultRetryMaxWait = 10 * time.Second
)

// SimplifierOptions tunes how aggressively the service calls the provider.
type SimplifierOptions struct {
	MaxAttempts       int
	RequestsPerSecond float64
}

// SimplifyService runs the simplification pipeline: extract text from the
// uploaded bytes, split it into chunks, rewrite each chunk through the AI
// provider, and join the results. A chunk that keeps failing is re-split at a
// smaller size; a sub-chunk that still fails becomes an inline error marker
// so one bad section does not sink the whole document.
type SimplifyService struct {
	ai           AIService
	docs         *DocumentService
	limiter      *rate.Limiter
	maxAttempts  int
	retryMinWait time.Duration
	retryMaxWait time.Duration
	logger       *zap.Logger
}

func NewSimplifyService(ai AIService, docs *DocumentService, opts SimplifierOptions, logger *zap.Logger) *SimplifyService {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = defaultMaxAttempts
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 0.5
	}
	return &SimplifyService{
		ai:           ai,
		docs:         docs,
		limiter:      rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
		maxAttempts:  opts.MaxAttempts,
		retryMinWait: defaultRetryMinWait,
		retryMaxWait: defaultRetryMaxWait,
		logger:       logger,
	}
}

// SimplifyDocument processes one uploaded file. progress may be nil; when set,
// a status event is sent after each processed chunk.
func (s *SimplifyService) SimplifyDocument(ctx context.Context, content []byte, filename string, progress chan<- types.ProcessingDocumentStatus) (*types.Document, error) {
	text, mime, err := s.docs.ExtractText(content)
	if err != nil {
		return nil, err
	}

	chunks := s.docs.ChunkText(text)
	s.logger.Info("document extracted",
		zap.String("filename", filename),
		zap.String("mime_type", mime),
		zap.Int("characters", len(text)),
		zap.Int("chunks", len(chunks)),
	)

	simplified := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		parts, err := s.simplifyChunk(ctx, chunk)
		if err != nil {
			return nil, err
		}
		simplified = append(simplified, parts...)

		if progress != nil {
			status := types.ProcessingDocumentStatus{
				Status:          "processing",
				Progress:        float64(i+1) / float64(len(chunks)),
				TotalChunks:     len(chunks),
				ProcessedChunks: i + 1,
			}
			select {
			case progress <- status:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return &types.Document{
		Filename:   filename,
		MimeType:   mime,
		Original:   text,
		Simplified: strings.Join(simplified, "\n\n"),
	}, nil
}

// Answer responds to a follow-up question about documentContent.
func (s *SimplifyService) Answer(ctx context.Context, question, documentContent string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return s.generateWithRetry(ctx, ChatPrompt(question, documentContent))
}

// simplifyChunk rewrites one chunk, falling back to smaller sub-chunks when
// the full chunk cannot be processed. Only a context error aborts the run.
func (s *SimplifyService) simplifyChunk(ctx context.Context, chunk string) ([]string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	out, err := s.generateWithRetry(ctx, SimplifyPrompt(chunk))
	if err == nil {
		return []string{out}, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	s.logger.Warn("chunk failed, retrying with smaller sections", zap.Error(err))
	parts := make([]string, 0)
	for _, sub := range s.docs.SubChunk(chunk) {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		subOut, subErr := s.generateWithRetry(ctx, SimplifyPrompt(sub))
		if subErr != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logger.Warn("section failed after retries", zap.Error(subErr))
			subOut = fmt.Sprintf("[Error processing this section: %v]", subErr)
		}
		parts = append(parts, subOut)
	}
	return parts, nil
}

func (s *SimplifyService) generateWithRetry(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	wait := s.retryMinWait
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		out, err := s.ai.Generate(ctx, prompt)
		if err == nil {
			return out, nil
		}
		lastErr = err
		if attempt == s.maxAttempts {
			break
		}
		s.logger.Warn("generation failed, backing off",
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(wait):
		}
		wait *= 2
		if wait > s.retryMaxWait {
			wait = s.retryMaxWait
		}
	}
	return "", lastErr
}
