package bindings

import (
	"net/http"

	"github.com/louisbranch/iconhub/internal/services/iconhub/routepath"
)

// Service defines binding route handlers consumed by this route module.
type Service interface {
	HandleBindingsList(w http.ResponseWriter, r *http.Request)
	HandleBindingGet(w http.ResponseWriter, r *http.Request)
	HandleBindingPut(w http.ResponseWriter, r *http.Request)
	HandleBindingDelete(w http.ResponseWriter, r *http.Request)
	HandleBindingSVG(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires binding routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.GetBindings, service.HandleBindingsList)
	mux.HandleFunc(routepath.GetBinding, service.HandleBindingGet)
	mux.HandleFunc(routepath.PutBinding, service.HandleBindingPut)
	mux.HandleFunc(routepath.DeleteBinding, service.HandleBindingDelete)
	mux.HandleFunc(routepath.GetBindingSVG, service.HandleBindingSVG)
}
