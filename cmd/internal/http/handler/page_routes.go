package handler

import (
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// PageRoute serves the prebuilt HTML shells of the browser client.
type PageRoute struct {
	dir string
}

func NewPageRoute(staticDir string) *PageRoute {
	return &PageRoute{dir: staticDir}
}

// Page returns a handler sending the named file, whatever the request path.
func (p *PageRoute) Page(name string) echo.HandlerFunc {
	path := filepath.Join(p.dir, name)
	return func(c echo.Context) error {
		return c.File(path)
	}
}

func (p *PageRoute) Register(e *echo.Echo) {
	e.GET("/", p.Page("index.html"))
	e.GET("/register.html", p.Page("register.html"))
	e.GET("/post_note.html", p.Page("post_note.html"))
	e.GET("/read_note/:id", p.Page("read_note.html"))
}
