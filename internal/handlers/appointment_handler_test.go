package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	domain "github.com/tiozaobarbearia/agenda-api/internal/domain/booking"
)

func availability(t *testing.T, r *gin.Engine, date string) []string {
	t.Helper()

	w := doJSON(t, r, http.MethodGet, "/api/availability?date="+date, "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Slots []string `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Slots
}

func TestServicesEndpoint(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/services", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			Name  string  `json:"nome"`
			Price float64 `json:"preco"`
		} `json:"data"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Total)
	require.Equal(t, "Corte", resp.Data[0].Name)
}

func TestAvailabilityEndpoint(t *testing.T) {
	r := newTestServer(t)

	t.Run("full catalog for an empty ledger", func(t *testing.T) {
		slots := availability(t, r, "01/01/2099")
		require.Equal(t, domain.Slots(), slots)
	})

	t.Run("missing date is a validation error", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/availability", "", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "missing_date", errorCode(t, w))
	})
}

func TestBookingFlow(t *testing.T) {
	r := newTestServer(t)
	token := loginToken(t, r, "admin", "admin123")

	// book 09:00
	w := doJSON(t, r, http.MethodPost, "/api/me/appointments", token, gin.H{
		"date":    "01/01/2099",
		"slot":    "09:00",
		"service": "Corte",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID       string `json:"id"`
		Customer string `json:"usuario"`
		Date     string `json:"data"`
		Slot     string `json:"horario"`
		Status   string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, "admin", created.Customer)
	require.Equal(t, "scheduled", created.Status)

	// the slot is gone from availability
	require.NotContains(t, availability(t, r, "01/01/2099"), "09:00")

	// second booking of the same pair fails
	w = doJSON(t, r, http.MethodPost, "/api/me/appointments", token, gin.H{
		"date": "01/01/2099",
		"slot": "09:00",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "slot_taken", errorCode(t, w))

	// it shows up in my list
	w = doJSON(t, r, http.MethodGet, "/api/me/appointments", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Total int `json:"total"`
		Data  []struct {
			ID   string `json:"id"`
			Slot string `json:"slot"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, 1, list.Total)
	require.Equal(t, created.ID, list.Data[0].ID)

	// cancel frees the slot again
	w = doJSON(t, r, http.MethodPatch, "/api/me/appointments/"+created.ID+"/cancel", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Contains(t, availability(t, r, "01/01/2099"), "09:00")

	// audit trail catches up asynchronously
	require.Eventually(t, func() bool {
		w := doJSON(t, r, http.MethodGet, "/api/me/audit-logs", token, nil)
		if w.Code != http.StatusOK {
			return false
		}
		var logs struct {
			Total int `json:"total"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &logs); err != nil {
			return false
		}
		return logs.Total >= 2
	}, 2*time.Second, 20*time.Millisecond)
}

func TestBookingValidationAtTheAPI(t *testing.T) {
	r := newTestServer(t)
	token := loginToken(t, r, "admin", "admin123")

	cases := []struct {
		name string
		body gin.H
		code string
	}{
		{"no date", gin.H{"slot": "09:00"}, "missing_date"},
		{"no slot", gin.H{"date": "01/01/2099"}, "missing_slot"},
		{"past date", gin.H{"date": "01/01/2020", "slot": "09:00"}, "past_date"},
		{"slot outside catalog", gin.H{"date": "01/01/2099", "slot": "12:30"}, "unknown_slot"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/me/appointments", token, tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			require.Equal(t, tc.code, errorCode(t, w))
		})
	}
}

func TestMeEndpoint(t *testing.T) {
	r := newTestServer(t)
	token := loginToken(t, r, "admin", "admin123")

	w := doJSON(t, r, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Username     string `json:"username"`
		Appointments int    `json:"appointments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "admin", resp.Username)
	require.Zero(t, resp.Appointments)
}
