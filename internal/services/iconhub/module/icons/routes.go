package icons

import (
	"net/http"

	"github.com/louisbranch/iconhub/internal/services/iconhub/routepath"
)

// Service defines icon route handlers consumed by this route module.
type Service interface {
	HandleIconsPage(w http.ResponseWriter, r *http.Request)
	HandleIconsTable(w http.ResponseWriter, r *http.Request)
	HandleIconSVG(w http.ResponseWriter, r *http.Request)
	HandleIconsSprite(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires icon routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.GetIcons, service.HandleIconsPage)
	mux.HandleFunc(routepath.GetIconsTable, service.HandleIconsTable)
	mux.HandleFunc(routepath.GetIconsSprite, service.HandleIconsSprite)
	mux.HandleFunc(routepath.GetIconSVG, service.HandleIconSVG)
}
