package hotels

import (
	_ "embed"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

//go:embed hotels.json
var hotelsJSON []byte

// GET /hotels
// Static listing; the data ships with the binary instead of living in Mongo.
func GetHotels(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(hotelsJSON)
}
