// sheetweb serves sprite sheets composed on demand from a directory of
// frame images.
package main

import (
	"flag"
	"net/http"
	"os"

	"badc0de.net/pkg/flagutil/v1"

	"badc0de.net/pkg/spritesheet/web"

	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

var (
	listenAddress = flag.String("listen_address", ":8080", "http listen address for sheetweb")
	sourceDir     = flag.String("source_dir", "", "directory with source frame images")
)

func main() {
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	if *sourceDir == "" {
		glog.Exitf("--source_dir is required")
	}
	if info, err := os.Stat(*sourceDir); err != nil || !info.IsDir() {
		glog.Exitf("--source_dir %q is not a readable directory", *sourceDir)
	}

	r := mux.NewRouter()
	web.NewHandler(*sourceDir).Register(r)

	glog.Infof("listening on %s", *listenAddress)
	glog.Fatal(http.ListenAndServe(*listenAddress, handlers.CombinedLoggingHandler(os.Stderr, r)))
}
