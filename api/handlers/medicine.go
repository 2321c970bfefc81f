package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/medcare/medcare-api/config"
	"github.com/medcare/medcare-api/models"
)

// Medicine serves the static medicine lookup table
type Medicine struct{}

// MedicineInfoHandler returns the bundled information for a medicine name.
// Lookups are case-insensitive and unknown medicines get the generic shape,
// so the route always answers 200.
func (Medicine) MedicineInfoHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	name := mux.Vars(r)["name"]
	zap.S().Debugf("medicine lookup: %v", name)

	info := models.LookupMedicine(name)

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(info); err != nil {
		config.ErrorStatus("failed to encode medicine info", http.StatusInternalServerError, w, err)
	}
}
