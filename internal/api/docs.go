package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/swaggo/swag"
)

type specDoc struct {
	once sync.Once
	json string
	err  error
}

// ReadDoc renders the embedded spec as JSON for the swag registry.
func (d *specDoc) ReadDoc() string {
	d.once.Do(func() {
		doc, err := Spec()
		if err != nil {
			d.err = err
			return
		}
		b, err := json.Marshal(doc)
		if err != nil {
			d.err = err
			return
		}
		d.json = string(b)
	})
	return d.json
}

var registerOnce sync.Once

func register() {
	registerOnce.Do(func() {
		swag.Register(swag.Name, &specDoc{})
	})
}

// RegisterDocsRoutes serves the OpenAPI document at /docs/openapi.json.
func RegisterDocsRoutes(mux *http.ServeMux) {
	register()

	mux.HandleFunc("GET /docs/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil || doc == "" {
			http.Error(w, "openapi document unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(doc))
	})
}
