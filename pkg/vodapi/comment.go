package vodapi

import "context"

// Comments lists comments for a video. Expected params: vid, page, limit.
func (s *Service) Comments(ctx context.Context, params Params) (*Envelope, error) {
	return s.get(ctx, "vod_comment/getlist", params)
}
