// Package apiclient is the HTTP pipeline every video-backend call goes
// through. It signs each request, attaches the session token and reacts to
// session rejection in one place, so individual endpoint wrappers never deal
// with authentication.
//
// # Pipeline
//
// A Client runs three explicit, ordered handler lists around the transport:
//
//   - before-send (RequestHandler): RequestIDHandler, TokenHandler and
//     SignatureHandler by default. They run in order before transmission; an
//     error from any of them aborts the call and is returned unchanged.
//   - after-receive (ResponseHandler): runs on every 2xx response.
//     InvalidationHandler checks the body's application code and invalidates
//     the session on 50014. The response is still returned to the caller.
//   - on-error (ErrorHandler): runs on every transport failure, including
//     non-2xx statuses. UnauthorizedHandler invalidates the session on 401.
//     The error is always returned to the caller afterwards.
//
// Extra handlers are appended with WithBeforeSend, WithAfterReceive and
// WithOnError.
//
// # Headers
//
//	x-token       session token, only when one is present
//	s             request signature (see pkg/signature)
//	t             signature timestamp, Unix seconds
//	X-Request-ID  correlation id, also added to log records
//	Content-Type  application/json, or multipart/form-data for uploads
//
// # Errors
//
// Non-2xx responses surface as *HTTPError, which matches ErrHTTPStatus and,
// for 401, ErrUnauthorized. Network failures match ErrTransport; timeouts
// additionally match ErrTimeout. A 50014 body is not an error: callers that
// care must check Response.Code themselves. Nothing is retried.
//
// # Usage
//
//	store, _ := session.New(ctx, storage)
//	client, err := apiclient.New(apiclient.Config{BaseURL: "https://vod.example.com/app/"}, store)
//	if err != nil {
//		return err
//	}
//	resp, err := client.Get(ctx, "video/list", url.Values{"page": {"1"}})
package apiclient
