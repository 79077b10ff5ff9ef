// Package render resolves and renders named views by response format.
//
// A Renderer consults an ordered chain of Resolvers for a (name, format)
// pair. When the request's negotiated format has no view — typically a
// mobile request hitting a page without a mobile variant — rendering retries
// with the configured fallback format.
//
//	renderer := render.New(
//		render.WithResolver(render.NewTemplateDir(viewsFS)),
//		render.WithFallback(mobylette.FormatHTML),
//	)
//
//	// in a handler
//	_ = renderer.Render(w, r, "home", data)
//
// Two resolvers ship with the package: TemplateDir serves html/template
// files named "<name>.<format>.html" from an fs.FS, and Registry serves
// templ components registered under name and format.
package render
