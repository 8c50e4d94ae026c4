package app

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"hotel_manager/internal/domain"
)

// MaxUploadBytes is the per-file ceiling the upload form enforces.
const MaxUploadBytes = 5 * 1024 * 1024

// UploadPipeline validates image files and submits them to the upload
// endpoints, folding the resulting URLs into the in-flight hotel draft.
// One pipeline exists per draft; the busy flag rejects re-entrant
// submissions rather than letting two uploads interleave.
type UploadPipeline struct {
	up       domain.Uploader
	maxBytes int64
	busy     atomic.Bool
}

func NewUploadPipeline(up domain.Uploader, maxBytes int64) *UploadPipeline {
	if maxBytes <= 0 {
		maxBytes = MaxUploadBytes
	}
	return &UploadPipeline{up: up, maxBytes: maxBytes}
}

func (p *UploadPipeline) validate(f domain.UploadFile) error {
	if !strings.HasPrefix(f.ContentType, "image/") {
		return fmt.Errorf("%s: %w", f.Name, domain.ErrInvalidType)
	}
	if f.Size > p.maxBytes {
		return fmt.Errorf("%s: %w", f.Name, domain.ErrTooLarge)
	}
	return nil
}

// UploadThumbnail validates and submits a single file, then sets the
// draft's thumbnail URL.
func (p *UploadPipeline) UploadThumbnail(ctx context.Context, token string, f domain.UploadFile, d *domain.HotelDraft) error {
	if err := p.validate(f); err != nil {
		return err
	}
	if !p.busy.CompareAndSwap(false, true) {
		return domain.ErrUploadInFlight
	}
	defer p.busy.Store(false)

	url, err := p.up.UploadSingle(ctx, token, f)
	if err != nil {
		return err
	}
	d.Thumbnail = url
	return nil
}

// AddImages validates the whole batch first; if any file fails, nothing
// is uploaded and the error names the offending file. On success the
// returned URLs are appended to the draft's images in response order.
func (p *UploadPipeline) AddImages(ctx context.Context, token string, fs []domain.UploadFile, d *domain.HotelDraft) error {
	if len(fs) == 0 {
		return nil
	}
	for _, f := range fs {
		if err := p.validate(f); err != nil {
			return err
		}
	}
	if !p.busy.CompareAndSwap(false, true) {
		return domain.ErrUploadInFlight
	}
	defer p.busy.Store(false)

	urls, err := p.up.UploadMany(ctx, token, fs)
	if err != nil {
		return err
	}
	d.Images = append(d.Images, urls...)
	return nil
}

// RemoveImage deletes an image by position. The index is checked against
// the current list length, so stale indices from an earlier render are
// rejected rather than deleting the wrong entry.
func (p *UploadPipeline) RemoveImage(d *domain.HotelDraft, index int) error {
	if index < 0 || index >= len(d.Images) {
		return &domain.ValidationError{Reason: fmt.Sprintf("no image at position %d", index)}
	}
	d.Images = append(d.Images[:index], d.Images[index+1:]...)
	return nil
}
