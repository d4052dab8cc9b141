// Package vodapi wraps the video backend's endpoints. Each method only names
// the HTTP method, path and parameter placement; signing, token handling and
// session invalidation happen in pkg/apiclient.
//
// Every JSON reply is decoded into an Envelope. A 2xx reply always yields an
// Envelope, even when its Code signals an application error (including
// apiclient.CodeSessionExpired), so callers branch on Envelope.Code.
//
//	api := vodapi.New(client, store)
//	env, err := api.VideoList(ctx, vodapi.Params{"page": 1, "limit": 24})
//	if err != nil {
//		return err
//	}
//	if !env.OK() {
//		return env.Err()
//	}
//	var page VideoPage
//	err = env.Into(&page)
package vodapi
