package vodapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrymomot/vodclient/pkg/apiclient"
)

// VideoList pages through videos of a channel. Typical params: channel, page, limit.
func (s *Service) VideoList(ctx context.Context, params Params) (*Envelope, error) {
	return s.get(ctx, "video/list", params)
}

// VideoDetail returns one video. Expected params: vid.
func (s *Service) VideoDetail(ctx context.Context, params Params) (*Envelope, error) {
	return s.get(ctx, "video/detail", params)
}

// VideoPlay returns the play lines of a video.
func (s *Service) VideoPlay(ctx context.Context, params Params) (*Envelope, error) {
	return s.get(ctx, "video/play", params)
}

// VideoPlayParams returns the parameters needed by FetchPlayData.
func (s *Service) VideoPlayParams(ctx context.Context, params Params) (*Envelope, error) {
	return s.get(ctx, "video/play/params", params)
}

// FetchPlayData performs the second-stage play lookup against a third-party
// URL. It bypasses the pipeline: no signature, token or invalidation.
func (s *Service) FetchPlayData(ctx context.Context, rawURL string, headers map[string]string) ([]byte, error) {
	if rawURL == "" {
		return nil, ErrEmptyPlayURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("vodapi: building play data request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := s.external.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vodapi: fetching play data: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := apiclient.ReadBody(resp.Body, s.maxPlayData)
	if err != nil {
		return nil, fmt.Errorf("vodapi: reading play data: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("vodapi: play data returned %s", resp.Status)
	}
	return body, nil
}

// PlayResources resolves a play page URL into playable resources.
func (s *Service) PlayResources(ctx context.Context, playURL string) (*Envelope, error) {
	return s.send(ctx, http.MethodPost, "play/resources", map[string]string{"url": playURL})
}

// Danmu lists bullet comments for a video.
func (s *Service) Danmu(ctx context.Context, params Params) (*Envelope, error) {
	return s.get(ctx, "danmu", params)
}

func (s *Service) PostDanmu(ctx context.Context, body any) (*Envelope, error) {
	return s.send(ctx, http.MethodPost, "danmu", body)
}

// Collections lists the favourites of the signed-in user.
func (s *Service) Collections(ctx context.Context, params Params) (*Envelope, error) {
	return s.get(ctx, "collect", params)
}

func (s *Service) AddCollection(ctx context.Context, body any) (*Envelope, error) {
	return s.send(ctx, http.MethodPost, "collect", body)
}

// DeleteCollection removes favourites. The body is sent as JSON with the DELETE.
func (s *Service) DeleteCollection(ctx context.Context, body any) (*Envelope, error) {
	return s.send(ctx, http.MethodDelete, "collect", body)
}

// History lists play history records.
func (s *Service) History(ctx context.Context, params Params) (*Envelope, error) {
	return s.get(ctx, "history", params)
}

// PostHistory records playback progress.
func (s *Service) PostHistory(ctx context.Context, body any) (*Envelope, error) {
	return s.send(ctx, http.MethodPost, "history", body)
}

// SearchSuggest returns pre-search keyword suggestions.
func (s *Service) SearchSuggest(ctx context.Context, params Params) (*Envelope, error) {
	return s.get(ctx, "video/key", params)
}

func (s *Service) Search(ctx context.Context, params Params) (*Envelope, error) {
	return s.get(ctx, "video/search", params)
}

// Video returns a video by id from the /videos resource.
func (s *Service) Video(ctx context.Context, id string) (*Envelope, error) {
	return s.get(ctx, "videos/"+url.PathEscape(id), nil)
}

func (s *Service) Videos(ctx context.Context, params Params) (*Envelope, error) {
	return s.get(ctx, "videos/list", params)
}

// Recommend lists videos related to id.
func (s *Service) Recommend(ctx context.Context, id string, params Params) (*Envelope, error) {
	return s.get(ctx, "videos/"+url.PathEscape(id)+"/recommend", params)
}

func (s *Service) UserCollections(ctx context.Context, params Params) (*Envelope, error) {
	return s.get(ctx, "user/collect", params)
}

// AddUserCollection adds a video to the signed-in user's collection.
func (s *Service) AddUserCollection(ctx context.Context, videoID string) (*Envelope, error) {
	return s.send(ctx, http.MethodPost, "user/collect", map[string]string{"video_id": videoID})
}

// DeleteUserCollection removes a video from the signed-in user's collection.
func (s *Service) DeleteUserCollection(ctx context.Context, videoID string) (*Envelope, error) {
	return s.send(ctx, http.MethodDelete, "user/collect", map[string]string{"video_id": videoID})
}

func (s *Service) UserHistory(ctx context.Context, params Params) (*Envelope, error) {
	return s.get(ctx, "user/history", params)
}

func (s *Service) AddUserHistory(ctx context.Context, body any) (*Envelope, error) {
	return s.send(ctx, http.MethodPost, "user/history", body)
}
