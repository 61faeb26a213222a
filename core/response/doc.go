// Package response provides HTTP response constructors returning
// handler.Response: plain text, bytes, templ components and redirects, plus
// the HTTPError type and the default error handler.
//
//	func home(ctx *web.Context) handler.Response {
//		return response.Templ(view.Page(data))
//	}
//
//	func toggle(ctx *web.Context) handler.Response {
//		return response.RedirectSeeOther("/?lang=pl")
//	}
//
// Errors implementing StatusCode() int are mapped to the matching HTTPError;
// anything else becomes 500.
package response
