package server

import (
	"fmt"
	"io"
	"os"

	"github.com/abiosoft/lineprefix"
	"github.com/gin-gonic/gin"

	"github.com/pescuma/bdcrime/lib/consoles"
	"github.com/pescuma/bdcrime/lib/dashboard"
	"github.com/pescuma/bdcrime/lib/utils"
)

type Options struct {
	Port uint
}

func Run(console consoles.Console, dash *dashboard.Dashboard, opts *Options) error {
	s := newServer(dash, opts)

	console.PushPrefix("http: ")
	defer console.PopPrefix()

	prefix := lineprefix.PrefixFunc(func() string {
		return console.Prepare("")
	})
	s.log = lineprefix.New(lineprefix.Writer(os.Stdout), prefix)

	ds := dash.Dataset()
	console.Printf("Serving %v (%v records, %v areas)\n", ds.Name, ds.Len(), len(ds.Areas()))
	console.Printf("Starting server on port %v...\n", s.opts.Port)

	return s.run()
}

type server struct {
	opts *Options
	dash *dashboard.Dashboard
	log  io.Writer
}

func newServer(dash *dashboard.Dashboard, opts *Options) *server {
	if opts == nil {
		opts = &Options{}
	}
	opts.Port = utils.Coalesce(opts.Port, 2427)

	return &server{
		opts: opts,
		dash: dash,
		log:  gin.DefaultWriter,
	}
}

func (s *server) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithWriter(s.log), gin.RecoveryWithWriter(s.log))

	s.initFiles(r)
	s.initDashboard(r)
	s.initExports(r)

	return r
}

func (s *server) run() error {
	gin.SetMode(gin.ReleaseMode)

	return s.router().Run(fmt.Sprintf(":%v", s.opts.Port))
}
