package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/sellkit/listing-assistant-api/internal/scheduler"
	"github.com/sellkit/listing-assistant-api/pkg/apiErrors"
)

// CronJobServices bundles the background jobs exposed over the cron routes.
type CronJobServices struct {
	RepriceSyncService *scheduler.RepriceSyncService
}

// RunCronJob triggers a named background job immediately.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch jobType {
		case "reprice":
			if started := services.RepriceSyncService.RunNow(); !started {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "reprice sync already running", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "unknown cron job type", map[string]any{
				"type": jobType,
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "started",
			"job":    jobType,
		})
	}
}

// GetCronStatus reports the state of the background jobs.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"reprice": services.RepriceSyncService.Status(),
		})
	}
}
