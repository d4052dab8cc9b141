// Package imageurl rewrites cover image URLs whose hosts refuse hotlinking.
//
// Images served from the sinaimg CDN check the Referer header, so they are
// fetched through a public image proxy instead:
//
//	src := imageurl.Proxy(video.Cover)
package imageurl
