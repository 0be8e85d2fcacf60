package server

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pescuma/bdcrime/frontend"
)

func (s *server) initFiles(r *gin.Engine) {
	assets, err := fs.Sub(frontend.Assets, "dist/assets")
	if err != nil {
		panic(err)
	}

	r.StaticFS("/assets", http.FS(assets))
	r.GET("/", s.index)
}

func (s *server) index(c *gin.Context) {
	html, err := frontend.Index.ReadFile("dist/index.html")
	if err != nil {
		sendError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}
