// Package static serves embedded assets through the generic handler type.
//
//	//go:embed static/*
//	var assets embed.FS
//
//	r.Get("/static/", static.FS[*web.Context](assets,
//		static.WithSubFS("static"),
//		static.WithFSStripPrefix("/static"),
//		static.WithCacheControl("public, max-age=3600"),
//	))
package static
