package vodapi

import (
	"context"
	"net/url"
)

// Channels lists the channel categories.
func (s *Service) Channels(ctx context.Context) (*Envelope, error) {
	return s.get(ctx, "channel", nil)
}

// Banners returns the carousel for a channel. An empty id means the home page ("0").
func (s *Service) Banners(ctx context.Context, id string) (*Envelope, error) {
	if id == "" {
		id = "0"
	}
	return s.get(ctx, "banners/"+url.PathEscape(id), nil)
}

// UpdateList returns the release schedule for date (see UpdateDate).
func (s *Service) UpdateList(ctx context.Context, date string, params Params) (*Envelope, error) {
	return s.get(ctx, "video_update_list/"+url.PathEscape(date), params)
}
