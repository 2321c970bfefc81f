package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/medcare/medcare-api/models"
)

func TestMedicineInfoHandler(t *testing.T) {
	tests := []struct {
		name             string
		medicine         string
		expectedName     string
		expectedCategory string
	}{
		{
			name:             "known medicine",
			medicine:         "paracetamol",
			expectedName:     "Paracetamol",
			expectedCategory: "Analgesic/Antipyretic",
		},
		{
			name:             "lookup is case-insensitive",
			medicine:         "ASPIRIN",
			expectedName:     "Aspirin",
			expectedCategory: "NSAID/Antiplatelet",
		},
		{
			name:         "unknown medicine gets the generic shape",
			medicine:     "unobtainium",
			expectedName: "unobtainium",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Medicine{}
			req := mux.SetURLVars(httptest.NewRequest("GET", "/api/medicine/"+tt.medicine, nil), map[string]string{"name": tt.medicine})
			rr := httptest.NewRecorder()
			h.MedicineInfoHandler(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)

			var info models.MedicineInfo
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))
			assert.Equal(t, tt.expectedName, info.Name)
			if tt.expectedCategory != "" {
				assert.Equal(t, tt.expectedCategory, info.Category)
			} else {
				assert.Equal(t, "As prescribed by physician", info.Dosage)
			}
		})
	}
}
